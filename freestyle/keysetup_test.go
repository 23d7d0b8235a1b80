package freestyle

import "testing"

func TestKeySetup256UsesSigma(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	var input [16]uint32
	keySetup(&input, key, 256)

	if input[key0] != 0x03020100 {
		t.Fatalf("key0 = %#08x, want %#08x", input[key0], 0x03020100)
	}
	if input[key4] != 0x13121110 {
		t.Fatalf("key4 = %#08x, want %#08x", input[key4], 0x13121110)
	}
	if input[constant0] != 0x61707865 { // "expa" little-endian
		t.Fatalf("constant0 = %#08x, want the sigma constant", input[constant0])
	}
}

func TestKeySetup128RepeatsKeyAndUsesTau(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i + 1)
	}
	var input [16]uint32
	keySetup(&input, key, 128)

	if input[key0] != input[key4] {
		t.Fatalf("128-bit key must repeat into the upper half: key0=%#08x key4=%#08x", input[key0], input[key4])
	}
	if input[constant0] != 0x61707865 { // "expa" is shared between sigma and tau
		t.Fatalf("constant0 = %#08x", input[constant0])
	}
	if input[constant1] == 0x3320646e { // sigma's second word; tau differs here
		t.Fatalf("128-bit key setup must use tau, not sigma, constants")
	}
}

func TestCipherParameterBindingChangesWithParams(t *testing.T) {
	p1 := Params{MinRounds: 8, MaxRounds: 32, HashInterval: 4, NumPrecomputedRounds: 4, PepperBits: 8, NumInitHashes: 7, KeyBits: 256}
	p2 := p1
	p2.MaxRounds = 28

	w0a, w1a := p1.cipherParameter()
	w0b, w1b := p2.cipherParameter()

	if w0a == w0b && w1a == w1b {
		t.Fatalf("cipherParameter() did not change when MaxRounds changed")
	}
}

func TestRoundSetupBindsConstantsAndRoundsPossible(t *testing.T) {
	key := make([]byte, 32)
	var input [16]uint32
	keySetup(&input, key, 256)
	before0, before1 := input[constant0], input[constant1]

	ctx := &Ctx{input: input}
	p := Params{MinRounds: 8, MaxRounds: 32, HashInterval: 4, NumPrecomputedRounds: 4, PepperBits: 8, NumInitHashes: 7, KeyBits: 256}
	roundSetup(ctx, p)

	if ctx.input[constant0] == before0 && ctx.input[constant1] == before1 {
		t.Fatalf("roundSetup did not XOR the parameter words into constant0/constant1")
	}
	if got := p.numRoundsPossible(); got != 7 {
		t.Fatalf("numRoundsPossible() = %d, want 7", got)
	}
}
