package freestyle

// sanitySetupParams are the fixed parameters both halves of randomized
// setup temporarily install, independent of the caller's own parameters.
var sanitySetupParams = Params{
	MinRounds:            12,
	MaxRounds:            36,
	HashInterval:         1,
	NumPrecomputedRounds: 4,
}

// precomputeSetup installs the sanity parameters, runs the precomputed
// rounds once, saves the resulting counter as initialCounter, and folds
// the pepper into constant3. It returns the caller's real parameters so
// the caller can restore them later.
func precomputeSetup(ctx *Ctx) Params {
	saved := ctx.params

	ctx.params.MinRounds = sanitySetupParams.MinRounds
	ctx.params.MaxRounds = sanitySetupParams.MaxRounds
	ctx.params.HashInterval = sanitySetupParams.HashInterval
	ctx.params.NumPrecomputedRounds = sanitySetupParams.NumPrecomputedRounds

	precomputeRounds(&ctx.input, ctx.params.NumPrecomputedRounds)

	ctx.initialCounter = ctx.input[counterIdx]

	ctx.input[constant3] += ctx.pepper

	return saved
}

func restoreParams(ctx *Ctx, saved Params) {
	ctx.params.MinRounds = saved.MinRounds
	ctx.params.MaxRounds = saved.MaxRounds
	ctx.params.HashInterval = saved.HashInterval
	ctx.params.NumPrecomputedRounds = saved.NumPrecomputedRounds

	ctx.input[counterIdx] = ctx.initialCounter

	ctx.input[iv0] ^= ctx.rand[1]
	ctx.input[iv1] ^= ctx.rand[2]
	ctx.input[iv2] ^= ctx.rand[3]

	ctx.input[constant0] ^= ctx.rand[4]
	ctx.input[constant1] ^= ctx.rand[5]
	ctx.input[constant2] ^= ctx.rand[6]
	ctx.input[constant3] ^= ctx.rand[7]

	precomputeRounds(&ctx.input, ctx.params.NumPrecomputedRounds)
	ctx.initialCounter = ctx.input[counterIdx]
}

// deriveRand computes rand[0..8] from the eight groups of seven (plus one
// aliased re-read) round counts in R. R is indexed up to R[55]; entries
// beyond the written prefix are expected to be zero, which Go's
// zero-valued array already guarantees.
func deriveRand(rand *[8]uint32, r *[maxInitHashes]uint32) {
	// deriveRand indexes 7*i+k for i up to 7, reaching index 55, which can
	// run past num_init_hashes; those entries are left at their
	// zero-initialized value.
	read := func(idx int) uint32 {
		if idx < len(r) {
			return r[idx]
		}
		return 0
	}

	for i := 0; i < 8; i++ {
		var temp1, temp2 uint32

		axr(&temp1, ref(read(7*i+0)), &temp2, 16)
		axr(&temp2, ref(read(7*i+1)), &temp1, 12)
		axr(&temp1, ref(read(7*i+2)), &temp2, 8)
		axr(&temp2, ref(read(7*i+3)), &temp1, 7)

		axr(&temp1, ref(read(7*i+4)), &temp2, 16)
		axr(&temp2, ref(read(7*i+5)), &temp1, 12)
		axr(&temp1, ref(read(7*i+6)), &temp2, 8)
		axr(&temp2, ref(read(7*i+0)), &temp1, 7)

		rand[i] = temp1
	}
}

// ref returns a pointer to a fresh copy of v, since axr takes its second
// operand by address but the R entries here are plain values.
func ref(v uint32) *uint32 {
	return &v
}

// randomSetupEncrypt runs the encrypt side of randomized setup: drawing a
// pepper unless the caller supplied one, producing num_init_hashes init
// hashes, rescanning peppers below a drawn pepper for the earliest one that
// also decodes them (a caller-supplied pepper is used as is), and deriving
// rand[].
func randomSetupEncrypt(ctx *Ctx) {
	var r, cr [maxInitHashes]uint32

	if !ctx.isPepperSet {
		if ctx.params.PepperBits == 32 {
			ctx.pepper = ctx.random.Uint32n(0xFFFFFFFF)
		} else {
			ctx.pepper = ctx.random.Uint32n(uint32(1) << ctx.params.PepperBits)
		}
	}

	saved := precomputeSetup(ctx)

	for i := uint8(0); i < ctx.params.NumInitHashes; i++ {
		var hash uint16
		n := processBlock(ctx, nil, nil, &hash, true)
		r[i] = n
		ctx.initHash[i] = hash
		ctx.incrementCounter()
	}

	if !ctx.isPepperSet {
		ctx.input[constant3] -= ctx.pepper

		for p := uint32(0); p < ctx.pepper; p++ {
			ctx.input[counterIdx] = ctx.initialCounter
			found := true
			for i := uint8(0); i < ctx.params.NumInitHashes; i++ {
				hash := ctx.initHash[i]
				n := processBlock(ctx, nil, nil, &hash, false)
				if n == 0 {
					found = false
					break
				}
				cr[i] = n
				ctx.incrementCounter()
			}
			if found {
				r = cr
				break
			}
			ctx.input[constant3]++
		}
	}

	ctx.logger.verbosef("randomized setup (encrypt): pepper=%d, init hashes=%d", ctx.pepper, ctx.params.NumInitHashes)

	deriveRand(&ctx.rand, &r)

	restoreParams(ctx, saved)
}

// randomSetupDecrypt runs the decrypt side of randomized setup: scanning
// peppers from the caller-supplied (or zero) starting point until all
// num_init_hashes blocks confirm, then deriving rand[].
func randomSetupDecrypt(ctx *Ctx) error {
	var r [maxInitHashes]uint32

	saved := precomputeSetup(ctx)

	maxPepper := (uint64(1) << ctx.params.PepperBits) - 1

	found := false
	for pepper := uint64(ctx.pepper); pepper <= maxPepper; pepper++ {
		ctx.input[counterIdx] = ctx.initialCounter

		blockOK := true
		for i := uint8(0); i < ctx.params.NumInitHashes; i++ {
			hash := ctx.initHash[i]
			n := processBlock(ctx, nil, nil, &hash, false)
			if n == 0 {
				blockOK = false
				break
			}
			r[i] = n
			ctx.incrementCounter()
		}

		if blockOK {
			found = true
			break
		}
		ctx.input[constant3]++
	}

	if !found {
		ctx.logger.errorf("pepper search exhausted over %d candidates", maxPepper-uint64(ctx.pepper)+1)
		return ErrPepperSearchExhausted
	}

	ctx.logger.verbosef("randomized setup (decrypt): pepper search succeeded")

	deriveRand(&ctx.rand, &r)

	restoreParams(ctx, saved)
	return nil
}
