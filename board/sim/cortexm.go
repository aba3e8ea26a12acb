package sim

// RA8M1Frequency is the Renesas RA8M1 maximum core clock.
const RA8M1Frequency = 480_000_000

// Debug register bits needed to start the DWT cycle counter.
const (
	demcrTRCENA      = 1 << 24
	dwtCtrlCYCCNTENA = 1 << 0
)

// CortexM85 models the Cortex-M85 on a Renesas RA8M1: the 32-bit DWT CYCCNT
// register is frozen at zero until bring-up enables trace (DEMCR.TRCENA) and
// the counter (DWT_CTRL.CYCCNTENA).
type CortexM85 struct {
	demcr   uint32
	dwtCtrl uint32
	cyccnt  counter[uint32]
}

// NewCortexM85 returns a board whose counter is not yet running.
func NewCortexM85(opts ...Option) *CortexM85 {
	return &CortexM85{cyccnt: counter[uint32]{cfg: newConfig(RA8M1Frequency, opts)}}
}

// Initialise clears CYCCNT and enables it. Once the counter is running a
// second call leaves it untouched, so a warm restart keeps counting.
func (b *CortexM85) Initialise() error {
	if b.dwtCtrl&dwtCtrlCYCCNTENA != 0 {
		return nil
	}

	b.demcr |= demcrTRCENA
	b.cyccnt.reset()
	b.dwtCtrl |= dwtCtrlCYCCNTENA

	return nil
}

// Running reports whether CYCCNT is counting.
func (b *CortexM85) Running() bool {
	return b.demcr&demcrTRCENA != 0 && b.dwtCtrl&dwtCtrlCYCCNTENA != 0
}

func (b *CortexM85) read() uint32 {
	if !b.Running() {
		return 0
	}

	return b.cyccnt.read()
}

//go:noinline
func (b *CortexM85) StartTrigger() uint32 {
	return b.read()
}

//go:noinline
func (b *CortexM85) StopTrigger() uint32 {
	return b.read()
}
