package keypad

// Pin implementations must have comparable dynamic types and distinct
// identities per physical pin: New compares bindings by value to reject a
// pin bound to more than one matrix line. Pointer-typed pins get this for
// free; value-typed pins must carry an identifying field.

// RowPin drives one matrix row.
//
// Implementations must behave as open-drain outputs: after Release the pin
// floats at high impedance, and it is never actively driven high. With every
// non-scanning row floating, pressing keys in several rows of one column
// cannot short two driven rows against each other. Configure enables any
// port clock the pin needs and leaves the pin released; it is called once
// from New.
type RowPin interface {
	Configure() error
	Drive()   // sink the row low
	Release() // float the row
}

// ColPin senses one matrix column.
//
// Configure enables any port clock and sets the pin as a high-impedance
// input held to Vcc by an internal pull-up. Get reports the pin level:
// false only when a driven row reaches this column through a closed switch.
type ColPin interface {
	Configure() error
	Get() bool
}
