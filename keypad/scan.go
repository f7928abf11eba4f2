package keypad

// Scan performs one full electrical sweep of the matrix and returns a bitmask
// of every currently-closed intersection, bit r*colCount+c per key.
//
// Rows are visited in index order. Each row is driven low, held for the
// stabilization delay so the column pull-ups settle, sampled across every
// column, and released before the next row is driven; at most one row sinks
// current at any moment. The call blocks for about rowCount*Stabilize and
// must run from a task context, never an interrupt.
func (k *Keypad) Scan() uint32 {
	var keys uint32

	for r, row := range k.rows {
		row.Drive()
		k.cfg.Sleep(k.cfg.Stabilize)

		for c, col := range k.cols {
			if !col.Get() {
				keys |= 1 << (r*len(k.cols) + c)
			}
		}

		row.Release()
	}

	return keys
}
