package keypad

import "testing"

func TestKeysString(t *testing.T) {
	cases := []struct {
		k    Keys
		want string
	}{
		{KeyNone, "none"},
		{Key1, "1"},
		{KeyEnter, "ENTER"},
		{Key1 | Key2, "1+2"},
		{KeyStar | Key0 | KeyPound, "*+0+#"},
		{Key5 | KeyLong, "5+LONG"},
		{Keys(1 << 20), "0x100000"},
		{Key1 | Keys(1<<20), "1+0x100000"},
	}
	for _, tc := range cases {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%#x: got %q, want %q", uint32(tc.k), got, tc.want)
		}
	}
}

func TestKeysHas(t *testing.T) {
	chord := Key1 | Key2
	if !chord.Has(Key1) || !chord.Has(Key1|Key2) {
		t.Fatal("Has missed present keys")
	}
	if chord.Has(Key3) || chord.Has(Key1|Key3) {
		t.Fatal("Has reported absent keys")
	}
}
