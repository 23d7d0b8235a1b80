package freestyle

import "testing"

func TestDeriveRandHandlesPaddingBeyondNumInitHashes(t *testing.T) {
	var r [maxInitHashes]uint32
	for i := 0; i < 7; i++ { // only the minimum num_init_hashes entries written
		r[i] = uint32(i + 1)
	}
	var rand1 [8]uint32
	deriveRand(&rand1, &r)

	// A second buffer with the same written prefix, its padding likewise
	// left at Go's zero value, must derive identically.
	var r2 [maxInitHashes]uint32
	for i := 0; i < 7; i++ {
		r2[i] = uint32(i + 1)
	}
	var rand2 [8]uint32
	deriveRand(&rand2, &r2)

	if rand1 != rand2 {
		t.Fatalf("deriveRand not deterministic over identical input: %v != %v", rand1, rand2)
	}
}

func TestDeriveRandChangesWithInput(t *testing.T) {
	var r1, r2 [maxInitHashes]uint32
	for i := 0; i < 56; i++ {
		r1[i] = uint32(i)
		r2[i] = uint32(i)
	}
	r2[55] = 0xdeadbeef

	var rand1, rand2 [8]uint32
	deriveRand(&rand1, &r1)
	deriveRand(&rand2, &r2)

	if rand1 == rand2 {
		t.Fatalf("deriveRand ignored R[55], which rand[7] reads via the 7*7+6 index")
	}
}

func TestPrecomputeSetupIsReproducibleFromIdenticalState(t *testing.T) {
	key := make([]byte, 32)
	var input [16]uint32
	keySetup(&input, key, 256)

	ctx1 := &Ctx{input: input, random: NewReplaySource(1, 1)}
	roundSetup(ctx1, Params{MinRounds: 8, MaxRounds: 32, HashInterval: 4, NumPrecomputedRounds: 4, PepperBits: 8, NumInitHashes: 7, KeyBits: 256})
	saved1 := precomputeSetup(ctx1)
	counter1 := ctx1.initialCounter
	state1 := ctx1.input

	ctx2 := &Ctx{input: input, random: NewReplaySource(1, 1)}
	roundSetup(ctx2, Params{MinRounds: 8, MaxRounds: 32, HashInterval: 4, NumPrecomputedRounds: 4, PepperBits: 8, NumInitHashes: 7, KeyBits: 256})
	saved2 := precomputeSetup(ctx2)
	counter2 := ctx2.initialCounter
	state2 := ctx2.input

	if counter1 != counter2 || state1 != state2 {
		t.Fatalf("precomputeSetup is not reproducible from identical starting state")
	}
	if saved1 != saved2 {
		t.Fatalf("precomputeSetup saved different params from identical input params")
	}
}
