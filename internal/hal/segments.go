package hal

import (
	"strings"
	"sync"
)

// DigitCount is the number of seven-segment displays on the board.
const DigitCount = 7

// SegmentBlank is the all-segments-off pattern (active low).
const SegmentBlank byte = 0xFF

// segmentPatterns maps decimal digits to active-low segment bits.
var segmentPatterns = [10]byte{
	0xC0, // 0
	0xF9, // 1
	0xA4, // 2
	0xB0, // 3
	0x99, // 4
	0x92, // 5
	0x82, // 6
	0xF8, // 7
	0x80, // 8
	0x90, // 9
}

// SegmentPattern returns the segment bits for value, or SegmentBlank when
// value is not a decimal digit.
func SegmentPattern(value int) byte {
	if value < 0 || value > 9 {
		return SegmentBlank
	}
	return segmentPatterns[value]
}

// SegmentBank simulates the seven display registers.
type SegmentBank struct {
	mu       sync.Mutex
	patterns [DigitCount]byte
}

// NewSegmentBank creates a bank with every digit blank.
func NewSegmentBank() *SegmentBank {
	b := &SegmentBank{}
	for i := range b.patterns {
		b.patterns[i] = SegmentBlank
	}
	return b
}

// SetDigit writes the pattern for value to display index.
func (b *SegmentBank) SetDigit(index, value int) {
	if index < 0 || index >= DigitCount {
		return
	}
	b.mu.Lock()
	b.patterns[index] = SegmentPattern(value)
	b.mu.Unlock()
}

// Pattern returns the raw register value of display index.
func (b *SegmentBank) Pattern(index int) byte {
	if index < 0 || index >= DigitCount {
		return SegmentBlank
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.patterns[index]
}

// String decodes the registers, most significant display first.
// Blank displays read as a space and unknown patterns as '?'.
func (b *SegmentBank) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	for i := DigitCount - 1; i >= 0; i-- {
		sb.WriteByte(decodePattern(b.patterns[i]))
	}
	return sb.String()
}

func decodePattern(p byte) byte {
	if p == SegmentBlank {
		return ' '
	}
	for d, bits := range segmentPatterns {
		if bits == p {
			return byte('0' + d)
		}
	}
	return '?'
}
