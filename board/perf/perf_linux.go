//go:build linux

package perf

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Board reads user-space CPU cycles of the thread that called Initialise.
// Initialise locks the calling goroutine to its OS thread so the counter
// follows the workload. A read failure after a successful Initialise is
// fatal: the triggers have no error path, so read panics.
type Board struct {
	fd  int
	buf [8]byte
}

// Initialise opens the cycle counter. A second call keeps the open counter.
func (b *Board) Initialise() error {
	if b.fd >= 0 {
		return nil
	}

	runtime.LockOSThread()

	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
		Config: unix.PERF_COUNT_HW_CPU_CYCLES,
		Bits:   unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}

	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		runtime.UnlockOSThread()

		return fmt.Errorf("%w: perf_event_open: %w", ErrUnsupported, err)
	}

	b.fd = fd

	return nil
}

// Close releases the counter and the thread lock.
func (b *Board) Close() error {
	if b.fd < 0 {
		return nil
	}

	err := unix.Close(b.fd)
	b.fd = -1
	runtime.UnlockOSThread()

	return err
}

//go:noinline
func (b *Board) StartTrigger() uint64 {
	return b.read()
}

//go:noinline
func (b *Board) StopTrigger() uint64 {
	return b.read()
}

func (b *Board) read() uint64 {
	if b.fd < 0 {
		return 0
	}

	n, err := unix.Read(b.fd, b.buf[:])
	if err != nil || n != len(b.buf) {
		panic(fmt.Sprintf("perf: read cycle counter: n=%d err=%v", n, err))
	}

	return binary.NativeEndian.Uint64(b.buf[:])
}
