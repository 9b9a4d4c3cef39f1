package wasmbe

import "testing"

func TestLebEncodeUnsignedSingleByte(t *testing.T) {
	for n := uint64(0); n <= 127; n++ {
		out := lebEncode(n)
		if len(out) != 1 {
			t.Fatalf("lebEncode(%d) = %x, want single byte", n, out)
		}
		got, consumed := lebDecode(out)
		if got != n || consumed != 1 {
			t.Fatalf("round-trip lebEncode(%d): got %d (%d bytes)", n, got, consumed)
		}
	}
}

func TestLebEncodeUnsignedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 255, 300, 16384, 1 << 20, 1 << 40, ^uint64(0)}
	for _, n := range values {
		out := lebEncode(n)
		got, consumed := lebDecode(out)
		if got != n {
			t.Fatalf("round-trip lebEncode(%d) = %x decoded to %d", n, out, got)
		}
		if consumed != len(out) {
			t.Fatalf("lebDecode(%x) consumed %d bytes, want %d", out, consumed, len(out))
		}
	}
}

func TestLebEncodeSignedSingleByte(t *testing.T) {
	for n := int64(-64); n <= 63; n++ {
		out := lebEncodeSigned(n)
		if len(out) != 1 {
			t.Fatalf("lebEncodeSigned(%d) = %x, want single byte", n, out)
		}
		got, consumed := lebDecodeSigned(out)
		if got != n || consumed != 1 {
			t.Fatalf("round-trip lebEncodeSigned(%d): got %d (%d bytes)", n, got, consumed)
		}
	}
}

func TestLebEncodeSignedRoundTrip(t *testing.T) {
	values := []int64{0, -1, 63, 64, -64, -65, 1000, -1000, 1 << 30, -(1 << 30), 1<<62 - 1, -(1 << 62)}
	for _, n := range values {
		out := lebEncodeSigned(n)
		got, consumed := lebDecodeSigned(out)
		if got != n {
			t.Fatalf("round-trip lebEncodeSigned(%d) = %x decoded to %d", n, out, got)
		}
		if consumed != len(out) {
			t.Fatalf("lebDecodeSigned(%x) consumed %d bytes, want %d", out, consumed, len(out))
		}
	}
}

func TestLebEncodeZero(t *testing.T) {
	if out := lebEncode(0); len(out) != 1 || out[0] != 0x00 {
		t.Fatalf("lebEncode(0) = %x, want [0x00]", out)
	}
}
