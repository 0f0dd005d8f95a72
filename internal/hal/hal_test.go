package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Compile-time checks that the simulated peripherals satisfy the driver interfaces.
var (
	_ PixelSurface   = (*core.Framebuffer)(nil)
	_ Timer          = (*TickerTimer)(nil)
	_ Timer          = (*ManualTimer)(nil)
	_ Inputs         = (*SimInputs)(nil)
	_ SegmentDisplay = (*SegmentBank)(nil)
)

func TestPeriodConversion(t *testing.T) {
	period := PeriodTicks(DefaultClockHz, 50*time.Millisecond)
	assert.Equal(t, uint32(1_499_999), period)
	assert.Equal(t, 50*time.Millisecond, PeriodInterval(DefaultClockHz, period))

	assert.Equal(t, uint32(0), PeriodTicks(DefaultClockHz, 0))
	assert.Equal(t, time.Duration(0), PeriodInterval(0, period))
}

func TestTickerTimerDeliversEvents(t *testing.T) {
	timer := NewTickerTimer(1000) // 1 kHz clock, 1 tick = 1ms
	timer.Configure(PeriodTicks(1000, 5*time.Millisecond))
	defer timer.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-timer.Events():
			assert.True(t, timer.Pending(), "event should leave the pending flag set")
			timer.Acknowledge()
			assert.False(t, timer.Pending())
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}
	}

	assert.GreaterOrEqual(t, timer.Fired(), uint64(3))
	assert.Equal(t, uint64(3), timer.Acked())
}

func TestTickerTimerStopIsIdempotent(t *testing.T) {
	timer := NewTickerTimer(DefaultClockHz)
	timer.Stop()
	timer.Configure(PeriodTicks(DefaultClockHz, time.Millisecond))
	timer.Stop()
	timer.Stop()
}

func TestManualTimer(t *testing.T) {
	timer := NewManualTimer()
	timer.Configure(42)
	assert.Equal(t, uint32(42), timer.Period())

	done := make(chan struct{})
	go func() {
		<-timer.Events()
		timer.Acknowledge()
		close(done)
	}()

	timer.Fire()
	<-done
	assert.False(t, timer.Pending())
	assert.Equal(t, uint64(1), timer.Acked())
}

func TestSimInputs(t *testing.T) {
	in := NewSimInputs()
	assert.False(t, in.ReadButton())
	assert.Equal(t, uint32(0), in.ReadSwitches())

	in.SetButton(true)
	assert.True(t, in.ReadButton())

	in.SetSwitches(0xFFFF)
	assert.Equal(t, uint32(SwitchMask), in.ReadSwitches(), "switches are masked to ten bits")

	in.SetSwitches(0)
	in.ToggleSwitch(0)
	in.ToggleSwitch(3)
	in.ToggleSwitch(12) // ignored
	assert.Equal(t, uint32(0b1001), in.ReadSwitches())
	in.ToggleSwitch(0)
	assert.Equal(t, uint32(0b1000), in.ReadSwitches())
}

func TestSegmentBank(t *testing.T) {
	bank := NewSegmentBank()
	assert.Equal(t, "       ", bank.String(), "power-on displays are blank")

	for i := 0; i < DigitCount; i++ {
		bank.SetDigit(i, i)
	}
	assert.Equal(t, "6543210", bank.String())
	assert.Equal(t, byte(0xC0), bank.Pattern(0))
	assert.Equal(t, byte(0x82), bank.Pattern(6))

	bank.SetDigit(2, 10)
	assert.Equal(t, SegmentBlank, bank.Pattern(2), "out-of-range value blanks the digit")
	bank.SetDigit(3, -1)
	assert.Equal(t, SegmentBlank, bank.Pattern(3))

	before := bank.String()
	bank.SetDigit(7, 1)
	bank.SetDigit(-1, 1)
	require.Equal(t, before, bank.String(), "out-of-range index is a no-op")
	assert.Equal(t, SegmentBlank, bank.Pattern(99))
}

func TestSegmentPatternTable(t *testing.T) {
	expected := []byte{0xC0, 0xF9, 0xA4, 0xB0, 0x99, 0x92, 0x82, 0xF8, 0x80, 0x90}
	for d, p := range expected {
		assert.Equal(t, p, SegmentPattern(d), "digit %d", d)
	}
}
