package freestyle

// State layout indices into Ctx.input, matching the ChaCha constant/key/
// counter/nonce arrangement.
const (
	constant0 = iota
	constant1
	constant2
	constant3
	key0
	key1
	key2
	key3
	key4
	key5
	key6
	key7
	counterIdx
	iv0
	iv1
	iv2
)

const (
	maxInitHashes  = 56
	hashSpace      = 1 << 16 // size of the 16-bit block-hash space
	blockSize      = 64
	sigmaConstants = "expand 32-byte k"
	tauConstants   = "expand 16-byte k"
)

// Params is the set of cipher parameters that must match between encryptor
// and decryptor. It is validated once, at construction of a Ctx, and then
// folded into constant0/constant1 via cipherParameter so a mismatch at
// decrypt time produces the wrong initial state rather than a silent
// acceptance.
type Params struct {
	MinRounds            uint32
	MaxRounds            uint32
	HashInterval         uint32
	NumPrecomputedRounds uint8
	PepperBits           uint8
	NumInitHashes        uint8
	KeyBits              uint16
}

func (p Params) validate() error {
	switch {
	case p.MinRounds < 1:
		return wrapErr(ErrRoundWindowInvalid, "min_rounds must be >= 1, got %d", p.MinRounds)
	case p.MaxRounds > 65536:
		return wrapErr(ErrRoundWindowInvalid, "max_rounds must be <= 65536, got %d", p.MaxRounds)
	case p.MinRounds > p.MaxRounds:
		return wrapErr(ErrRoundWindowInvalid, "min_rounds (%d) must be <= max_rounds (%d)", p.MinRounds, p.MaxRounds)
	case p.HashInterval == 0:
		return wrapErr(ErrHashIntervalMisaligned, "hash_interval must be nonzero")
	case p.MinRounds%p.HashInterval != 0:
		return wrapErr(ErrHashIntervalMisaligned, "min_rounds (%d) must be a multiple of hash_interval (%d)", p.MinRounds, p.HashInterval)
	case p.MaxRounds%p.HashInterval != 0:
		return wrapErr(ErrHashIntervalMisaligned, "max_rounds (%d) must be a multiple of hash_interval (%d)", p.MaxRounds, p.HashInterval)
	case p.NumPrecomputedRounds < 1 || p.NumPrecomputedRounds > 16:
		return wrapErr(ErrPrecomputedRoundsInvalid, "num_precomputed_rounds must be in [1,16], got %d", p.NumPrecomputedRounds)
	case uint32(p.NumPrecomputedRounds) > p.MinRounds-4:
		return wrapErr(ErrPrecomputedRoundsInvalid, "num_precomputed_rounds (%d) must be <= min_rounds-4 (%d)", p.NumPrecomputedRounds, p.MinRounds-4)
	case p.PepperBits < 8 || p.PepperBits > 32:
		return wrapErr(ErrPepperRange, "pepper_bits must be in [8,32], got %d", p.PepperBits)
	case p.NumInitHashes < 7 || p.NumInitHashes > maxInitHashes:
		return wrapErr(ErrInitHashCount, "num_init_hashes must be in [7,%d], got %d", maxInitHashes, p.NumInitHashes)
	case p.KeyBits != 128 && p.KeyBits != 256:
		return wrapErr(ErrKeyLength, "key_bits must be 128 or 256, got %d", p.KeyBits)
	}
	return nil
}

// numRoundsPossible is the number of distinct multiples of HashInterval in
// [MinRounds, MaxRounds], i.e. the number of ways a block can be encrypted.
func (p Params) numRoundsPossible() uint32 {
	return 1 + (p.MaxRounds-p.MinRounds)/p.HashInterval
}

// cipherParameter packs the parameter tuple into the two words that get
// XORed into constant0/constant1, binding the ciphertext to the exact
// parameter set the decryptor must use.
func (p Params) cipherParameter() (word0, word1 uint32) {
	word0 = (p.MinRounds&0xFFFF)<<16 | (p.MaxRounds & 0xFFFF)
	word1 = (p.HashInterval&0xFFFF)<<16 |
		(uint32(p.PepperBits)&0x3F)<<10 |
		(uint32(p.NumInitHashes)&0x3F)<<4 |
		(uint32(p.NumPrecomputedRounds) & 0xF)
	return word0, word1
}

// Ctx is the cipher state for one (key, iv) session. It must not be
// reused across a different nonce. See the package doc for lifecycle.
type Ctx struct {
	input [16]uint32
	rand  [8]uint32

	initHash [maxInitHashes]uint16

	pepper      uint32
	isPepperSet bool

	initialCounter uint32

	params Params

	random UniformSource
	logger *Logger
}

// SetCounter sets the counter to initialCounter+counter (wrapping), for
// random-access addressing of a block other than the next one in sequence.
func (ctx *Ctx) SetCounter(counter uint32) {
	ctx.input[counterIdx] = ctx.initialCounter + counter
}

func (ctx *Ctx) incrementCounter() {
	ctx.input[counterIdx]++
}
