package keyderiv

import "testing"

func bytes32(v byte) [32]byte {
	var b [32]byte
	b[31] = v
	return b
}

func TestDeriveDeterministic(t *testing.T) {
	pk := bytes32(10)
	pd := bytes32(3)

	ck1, ch1 := Derive(2001, 2020, pk, pd)
	ck2, ch2 := Derive(2001, 2020, pk, pd)

	if ck1 != ck2 {
		t.Fatal("card_key is not deterministic for identical inputs")
	}
	if ch1 != ch2 {
		t.Fatal("challenge is not deterministic for identical inputs")
	}
}

func TestDeriveSensitiveToBirthday(t *testing.T) {
	pk := bytes32(10)
	pd := bytes32(3)

	_, ch1 := Derive(2001, 2020, pk, pd)
	_, ch2 := Derive(2002, 2020, pk, pd)

	if ch1 == ch2 {
		t.Error("challenge must depend on birthday; changing it alone produced the same challenge")
	}
}

func TestDeriveSensitiveToToday(t *testing.T) {
	pk := bytes32(10)
	pd := bytes32(3)

	_, ch1 := Derive(2001, 2020, pk, pd)
	_, ch2 := Derive(2001, 2021, pk, pd)

	if ch1 == ch2 {
		t.Error("challenge must depend on today; changing it alone produced the same challenge")
	}
}
