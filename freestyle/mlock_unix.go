//go:build unix

package freestyle

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// lockMemory attempts to pin the state array's backing pages in RAM so key
// material can't be swapped to disk. Failure is logged and otherwise
// ignored: a sandboxed caller may lack CAP_IPC_LOCK.
func (ctx *Ctx) lockMemory() {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&ctx.input[0])), len(ctx.input)*4)
	if err := unix.Mlock(b); err != nil {
		ctx.logger.verbosef("mlock state array: %v", err)
	}
}
