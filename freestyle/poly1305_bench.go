// doublePoly1305 is a benchmarking helper only: a cost baseline for
// comparing the per-block authentication hash (blockHash) against an
// established MAC, never part of Freestyle's actual keystream or wire
// format.

package freestyle

import "golang.org/x/crypto/poly1305"

// doublePoly1305 computes two independent, real Poly1305 MACs under split
// halves of a 64-byte key and concatenates the results into a 32-byte tag,
// the benchmarking reference point for blockHash's cost.
func doublePoly1305(out *[32]byte, m []byte, key *[64]byte) {
	var tag1, tag2 [16]byte
	poly1305.Sum(&tag1, m, (*[32]byte)(key[:32]))
	poly1305.Sum(&tag2, m, (*[32]byte)(key[32:]))
	copy(out[:16], tag1[:])
	copy(out[16:], tag2[:])
}
