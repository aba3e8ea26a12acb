package sim

// Default core clocks.
const (
	RI5CYFrequency = 100_000_000
	RV64Frequency  = 1_000_000_000
)

// RI5CY models the riscv32 RI5CY core under Verilator: a 32-bit mcycle CSR
// that counts from reset with no bring-up required.
type RI5CY struct {
	mcycle counter[uint32]
}

// NewRI5CY returns a RI5CY board. The counter starts from the moment of
// construction, mirroring mcycle counting from reset.
func NewRI5CY(opts ...Option) *RI5CY {
	b := &RI5CY{mcycle: counter[uint32]{cfg: newConfig(RI5CYFrequency, opts)}}
	b.mcycle.reset()

	return b
}

// Initialise is a no-op; repeated calls are safe.
func (b *RI5CY) Initialise() error {
	return nil
}

//go:noinline
func (b *RI5CY) StartTrigger() uint32 {
	return b.mcycle.read()
}

//go:noinline
func (b *RI5CY) StopTrigger() uint32 {
	return b.mcycle.read()
}

// RV64 models a generic rv64 core with a 64-bit mcycle CSR.
type RV64 struct {
	mcycle counter[uint64]
}

// NewRV64 returns an RV64 board counting from construction.
func NewRV64(opts ...Option) *RV64 {
	b := &RV64{mcycle: counter[uint64]{cfg: newConfig(RV64Frequency, opts)}}
	b.mcycle.reset()

	return b
}

// Initialise is a no-op; repeated calls are safe.
func (b *RV64) Initialise() error {
	return nil
}

//go:noinline
func (b *RV64) StartTrigger() uint64 {
	return b.mcycle.read()
}

//go:noinline
func (b *RV64) StopTrigger() uint64 {
	return b.mcycle.read()
}
