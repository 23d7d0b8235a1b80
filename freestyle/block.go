package freestyle

// randomRoundNumber draws a target round count uniformly from
// [min_rounds, max_rounds+hash_interval-1] and snaps it down to a multiple
// of hash_interval.
func randomRoundNumber(ctx *Ctx) uint32 {
	span := ctx.params.MaxRounds - ctx.params.MinRounds + ctx.params.HashInterval
	r := ctx.params.MinRounds + ctx.random.Uint32n(span)
	r = ctx.params.HashInterval * (r / ctx.params.HashInterval)
	if r < ctx.params.MinRounds || r > ctx.params.MaxRounds {
		panic("freestyle: randomRoundNumber produced a value outside [min_rounds, max_rounds]")
	}
	return r
}

// blockHash computes the 16-bit authentication hash for round r, given the
// block's current state and the previous hash in the chain (0 for the
// first eligible round of a block).
func blockHash(output *[16]uint32, previousHash uint16, r uint32) uint16 {
	temp1 := r
	temp2 := uint32(previousHash)

	axr(&temp1, &output[3], &temp2, 16)
	axr(&temp2, &output[6], &temp1, 12)
	axr(&temp1, &output[9], &temp2, 8)
	axr(&temp2, &output[12], &temp1, 7)

	return uint16((temp1 & 0xFFFF) ^ (temp1 >> 16))
}

// processBlock runs one block of the cipher: the round search (encrypt) or
// round confirmation (decrypt), hash emission with collision resolution,
// and — unless this is a setup block (plaintext == nil) — the keystream
// XOR. It returns the number of rounds used, or 0 on decrypt if no round
// count in the window produced a matching hash.
func processBlock(ctx *Ctx, plaintext, ciphertext []byte, expectedHash *uint16, encrypt bool) uint32 {
	isSetup := plaintext == nil

	var output [16]uint32
	output = ctx.input
	output[counterIdx] ^= ctx.rand[0]

	var rounds uint32
	if encrypt {
		rounds = randomRoundNumber(ctx)
	} else {
		rounds = ctx.params.MaxRounds
	}

	var hash uint16
	var collided [hashSpace]bool

	r := ctx.params.NumPrecomputedRounds + 1
	var lastRound uint32
	for lastRound = uint32(r); lastRound <= rounds; lastRound++ {
		applyRound(&output, lastRound)

		if lastRound >= ctx.params.MinRounds && lastRound%ctx.params.HashInterval == 0 {
			hash = blockHash(&output, hash, lastRound)

			for probes := 0; collided[hash]; probes++ {
				if probes >= hashSpace {
					panic("freestyle: block hash collision set is full, probe cannot terminate")
				}
				hash++
			}
			collided[hash] = true

			if !encrypt && hash == *expectedHash {
				break
			}
		}
	}

	if encrypt {
		*expectedHash = hash
	} else if lastRound > ctx.params.MaxRounds {
		return 0
	}

	if !isSetup {
		var keystream [blockSize]byte
		for i := 0; i < 16; i++ {
			word := output[i] + ctx.input[i]
			keystream[4*i+0] = byte(word)
			keystream[4*i+1] = byte(word >> 8)
			keystream[4*i+2] = byte(word >> 16)
			keystream[4*i+3] = byte(word >> 24)
		}
		for i := range plaintext {
			ciphertext[i] = plaintext[i] ^ keystream[i]
		}
	}

	if encrypt {
		return rounds
	}
	return lastRound
}
