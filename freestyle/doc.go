// Package freestyle implements the Freestyle variable-round stream cipher,
// a ChaCha derivative that picks the number of quarter-round iterations per
// 64-byte block at random within a configured window and authenticates that
// choice with a short per-block hash so the decryptor can recover it.
//
// A Ctx is created by one of the Init* entry points for a single (key, iv)
// pair, driven through Process for a contiguous run of blocks, and then
// discarded; it must never be reused across a different nonce.
package freestyle
