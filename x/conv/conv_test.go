package conv

import "testing"

func TestAppendHex32(t *testing.T) {
	cases := map[uint32]string{
		0:           "0x00000000",
		0x40001100:  "0x40001100",
		0xDEADBEEF:  "0xdeadbeef",
		0x0000_0F0A: "0x00000f0a",
	}
	for in, want := range cases {
		if got := Hex32(in); got != want {
			t.Errorf("Hex32(%#x) = %q, want %q", in, got, want)
		}
	}
}

func TestAppendUint(t *testing.T) {
	got := string(AppendUint([]byte("ch"), 31))
	if got != "ch31" {
		t.Fatalf("got %q", got)
	}
	if s := string(AppendUint(nil, 0)); s != "0" {
		t.Fatalf("zero: %q", s)
	}
	if s := string(AppendUint(nil, 18446744073709551615)); s != "18446744073709551615" {
		t.Fatalf("max: %q", s)
	}
}
