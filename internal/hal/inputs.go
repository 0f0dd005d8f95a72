package hal

import "sync/atomic"

// SwitchMask covers the ten slide switches.
const SwitchMask = 0x3FF

// SimInputs is a button and switch bank backed by atomic registers, so a
// frontend goroutine can drive levels while the firmware polls them.
type SimInputs struct {
	button   atomic.Bool
	switches atomic.Uint32
}

// NewSimInputs creates inputs with the button released and all switches off.
func NewSimInputs() *SimInputs {
	return &SimInputs{}
}

// ReadButton returns the button level.
func (s *SimInputs) ReadButton() bool {
	return s.button.Load()
}

// ReadSwitches returns the switch bank, masked to ten bits.
func (s *SimInputs) ReadSwitches() uint32 {
	return s.switches.Load() & SwitchMask
}

// SetButton drives the button level.
func (s *SimInputs) SetButton(pressed bool) {
	s.button.Store(pressed)
}

// SetSwitches replaces the switch bank value.
func (s *SimInputs) SetSwitches(v uint32) {
	s.switches.Store(v & SwitchMask)
}

// ToggleSwitch flips one switch. Bits outside the bank are ignored.
func (s *SimInputs) ToggleSwitch(bit int) {
	if bit < 0 || bit > 9 {
		return
	}
	for {
		old := s.switches.Load()
		if s.switches.CompareAndSwap(old, (old^(1<<bit))&SwitchMask) {
			return
		}
	}
}
