package amx

import "testing"

func TestEncodeXY(t *testing.T) {
	got := EncodeXY(0x1234, 5, false)
	want := uint64(0x1234) | (5 << 56)
	if got != want {
		t.Errorf("EncodeXY(0x1234, 5, false) = %#x, want %#x", got, want)
	}

	got = EncodeXY(0x1234, 5, true)
	want |= 1 << 62
	if got != want {
		t.Errorf("EncodeXY(0x1234, 5, true) = %#x, want %#x", got, want)
	}
}

func TestEncodeXYMasksRegister(t *testing.T) {
	// A register index outside [0,7] must be masked, not spill into the
	// bits above its 3-bit field.
	got := EncodeXY(0, 15, false)
	want := uint64(7) << 56
	if got != want {
		t.Errorf("EncodeXY(0, 15, false) = %#x, want %#x (reg must mask to 3 bits)", got, want)
	}
}

func TestEncodeZ(t *testing.T) {
	got := EncodeZ(0xABCD, 60, false)
	want := uint64(0xABCD) | (60 << 56)
	if got != want {
		t.Errorf("EncodeZ(0xABCD, 60, false) = %#x, want %#x", got, want)
	}

	got = EncodeZ(0xABCD, 60, true)
	want |= 1 << 62
	if got != want {
		t.Errorf("EncodeZ(0xABCD, 60, true) = %#x, want %#x", got, want)
	}
}

func TestEncodeFMA(t *testing.T) {
	got := EncodeFMA(64, 128, 4, false)
	want := uint64(64) | (uint64(128) << 10) | (uint64(4) << 20)
	if got != want {
		t.Errorf("EncodeFMA(64, 128, 4, false) = %#x, want %#x", got, want)
	}

	got = EncodeFMA(64, 128, 4, true)
	want |= 1 << 63
	if got != want {
		t.Errorf("EncodeFMA(64, 128, 4, true) = %#x, want %#x", got, want)
	}
}

func TestEncodeFMAMasksFields(t *testing.T) {
	got := EncodeFMA(1<<9, 1<<9, 1<<6, false)
	if got != 0 {
		t.Errorf("EncodeFMA with out-of-range fields = %#x, want 0 (all fields must mask to width)", got)
	}
}
