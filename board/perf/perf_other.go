//go:build !linux

package perf

// Board is a stub outside Linux; Initialise always fails.
type Board struct {
	fd int
}

func (b *Board) Initialise() error {
	return ErrUnsupported
}

func (b *Board) Close() error {
	return nil
}

//go:noinline
func (b *Board) StartTrigger() uint64 {
	return 0
}

//go:noinline
func (b *Board) StopTrigger() uint64 {
	return 0
}
