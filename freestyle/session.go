package freestyle

// newCtx builds and validates a Ctx shared by all four Init* entry points.
func newCtx(key []byte, keyBits uint16, iv [12]byte, p Params, rnd UniformSource, logger *Logger) (*Ctx, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	wantKeyLen := 16
	if keyBits == 256 {
		wantKeyLen = 32
	}
	if len(key) != wantKeyLen {
		return nil, wrapErr(ErrKeyLength, "key must be %d bytes for key_bits=%d, got %d", wantKeyLen, keyBits, len(key))
	}

	ctx := &Ctx{random: rnd, logger: logger}
	if ctx.random == nil {
		ctx.random = CryptoSource{}
	}

	keySetup(&ctx.input, key, keyBits)
	ivSetup(&ctx.input, iv, 0)
	roundSetup(ctx, p)
	ctx.lockMemory()

	return ctx, nil
}

// InitEncrypt initializes ctx for encryption with a freshly drawn pepper.
func InitEncrypt(key []byte, keyBits uint16, iv [12]byte, p Params, rnd UniformSource, logger *Logger) (*Ctx, error) {
	ctx, err := newCtx(key, keyBits, iv, p, rnd, logger)
	if err != nil {
		return nil, err
	}
	ctx.pepper = 0
	ctx.isPepperSet = false
	randomSetupEncrypt(ctx)
	return ctx, nil
}

// InitEncryptWithPepper initializes ctx for encryption with a caller-chosen
// pepper.
func InitEncryptWithPepper(key []byte, keyBits uint16, iv [12]byte, p Params, pepper uint32, rnd UniformSource, logger *Logger) (*Ctx, error) {
	ctx, err := newCtx(key, keyBits, iv, p, rnd, logger)
	if err != nil {
		return nil, err
	}
	ctx.pepper = pepper
	ctx.isPepperSet = true
	randomSetupEncrypt(ctx)
	return ctx, nil
}

// InitDecrypt initializes ctx for decryption, starting the pepper search at
// 0, against the given init hashes (one per setup block, num_init_hashes
// entries).
func InitDecrypt(key []byte, keyBits uint16, iv [12]byte, p Params, initHash []uint16, rnd UniformSource, logger *Logger) (*Ctx, error) {
	return initDecrypt(key, keyBits, iv, p, 0, false, initHash, rnd, logger)
}

// InitDecryptWithPepper initializes ctx for decryption, starting the
// pepper search at the given pepper.
func InitDecryptWithPepper(key []byte, keyBits uint16, iv [12]byte, p Params, pepper uint32, initHash []uint16, rnd UniformSource, logger *Logger) (*Ctx, error) {
	return initDecrypt(key, keyBits, iv, p, pepper, true, initHash, rnd, logger)
}

func initDecrypt(key []byte, keyBits uint16, iv [12]byte, p Params, pepper uint32, isPepperSet bool, initHash []uint16, rnd UniformSource, logger *Logger) (*Ctx, error) {
	ctx, err := newCtx(key, keyBits, iv, p, rnd, logger)
	if err != nil {
		return nil, err
	}
	if len(initHash) != int(p.NumInitHashes) {
		return nil, wrapErr(ErrInitHashCount, "init_hash must have %d entries, got %d", p.NumInitHashes, len(initHash))
	}

	ctx.pepper = pepper
	ctx.isPepperSet = isPepperSet
	copy(ctx.initHash[:], initHash)

	if err := randomSetupDecrypt(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// InitHash returns the num_init_hashes authentication hashes produced
// during setup, to be transmitted alongside the ciphertext.
func (ctx *Ctx) InitHash() []uint16 {
	return append([]uint16(nil), ctx.initHash[:ctx.params.NumInitHashes]...)
}

// Process consumes len(in) bytes in 64-byte blocks, writing to out (which
// must be at least as long as in) and one 16-bit hash per block into hash
// (which must have at least ceil(len(in)/64) entries). Encryptors write
// into hash; decryptors read from it. A per-block round count below
// min_rounds aborts the whole stream with ErrBlockAuthFailed: no partial
// output is guaranteed to be valid once one block fails to authenticate.
func (ctx *Ctx) Process(in, out []byte, hash []uint16, encrypt bool) error {
	i := 0
	block := 0
	remaining := len(in)

	for remaining > 0 {
		n := blockSize
		if remaining < n {
			n = remaining
		}

		rounds := processBlock(ctx, in[i:i+n], out[i:i+n], &hash[block], encrypt)
		if rounds < ctx.params.MinRounds {
			ctx.logger.errorf("block %d: no round count in window matched", block)
			return ErrBlockAuthFailed
		}

		i += n
		remaining -= n
		block++
		ctx.incrementCounter()
	}

	return nil
}
