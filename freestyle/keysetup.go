package freestyle

import "encoding/binary"

// keySetup fills input[key0..key7] and the constant words from the key
// bytes, little-endian. A 128-bit key is repeated into the upper half and
// paired with the tau constants; a 256-bit key uses the full 32 bytes and
// the sigma constants, exactly as ChaCha does.
func keySetup(input *[16]uint32, key []byte, keyBits uint16) {
	input[key0] = binary.LittleEndian.Uint32(key[0:4])
	input[key1] = binary.LittleEndian.Uint32(key[4:8])
	input[key2] = binary.LittleEndian.Uint32(key[8:12])
	input[key3] = binary.LittleEndian.Uint32(key[12:16])

	var constants string
	var upper []byte
	if keyBits == 256 {
		upper = key[16:32]
		constants = sigmaConstants
	} else {
		upper = key[0:16]
		constants = tauConstants
	}

	input[key4] = binary.LittleEndian.Uint32(upper[0:4])
	input[key5] = binary.LittleEndian.Uint32(upper[4:8])
	input[key6] = binary.LittleEndian.Uint32(upper[8:12])
	input[key7] = binary.LittleEndian.Uint32(upper[12:16])

	input[constant0] = binary.LittleEndian.Uint32([]byte(constants)[0:4])
	input[constant1] = binary.LittleEndian.Uint32([]byte(constants)[4:8])
	input[constant2] = binary.LittleEndian.Uint32([]byte(constants)[8:12])
	input[constant3] = binary.LittleEndian.Uint32([]byte(constants)[12:16])
}

// ivSetup fills input[iv0..iv2] from a 12-byte nonce and sets the counter.
func ivSetup(input *[16]uint32, iv [12]byte, counter uint32) {
	input[counterIdx] = counter

	input[iv0] = binary.LittleEndian.Uint32(iv[0:4])
	input[iv1] = binary.LittleEndian.Uint32(iv[4:8])
	input[iv2] = binary.LittleEndian.Uint32(iv[8:12])
}

// roundSetup records the cipher parameters on ctx and binds them into
// constant0/constant1 via cipherParameter.
func roundSetup(ctx *Ctx, p Params) {
	ctx.params = p

	word0, word1 := p.cipherParameter()
	ctx.input[constant0] ^= word0
	ctx.input[constant1] ^= word1
}
