package selector

import "testing"

func TestComputeMatchesKnownSelector(t *testing.T) {
	got := Compute("test", []string{"uint256"})
	want := [4]byte{0xf8, 0xa8, 0xfd, 0x6d}
	if got != want {
		t.Errorf("Compute(test, [uint256]) = %x, want %x", got, want)
	}
}

func TestComputeZeroArgs(t *testing.T) {
	// foo() has no canonical reference value checked here, but the
	// signature string must still be "name()" with no parens content.
	a := Compute("foo", nil)
	b := Compute("foo", []string{})
	if a != b {
		t.Errorf("nil and empty inputTypes should hash identically: %x != %x", a, b)
	}
}
