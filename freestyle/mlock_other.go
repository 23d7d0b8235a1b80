//go:build !unix

package freestyle

// lockMemory is a no-op on platforms without mlock; see mlock_unix.go.
func (ctx *Ctx) lockMemory() {}
