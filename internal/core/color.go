package core

import "fmt"

// Color is a framebuffer pixel in RGB332 layout (RRRGGGBB), one byte per pixel.
type Color uint8

// Palette entries used by the firmware.
const (
	ColorBlack    Color = 0x00
	ColorDarkBlue Color = 0x03
	ColorGreen    Color = 0x10
	ColorRed      Color = 0xE0
	ColorWhite    Color = 0xFF
)

// RGB expands the packed byte to 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	r3 := int(c>>5) & 0x07
	g3 := int(c>>2) & 0x07
	b2 := int(c) & 0x03
	return uint8(r3 * 255 / 7), uint8(g3 * 255 / 7), uint8(b2 * 255 / 3)
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Rune returns a printable stand-in for plain-text framebuffer dumps.
func (c Color) Rune() rune {
	switch c {
	case ColorBlack:
		return ' '
	case ColorGreen:
		return '.'
	case ColorDarkBlue:
		return 'o'
	case ColorRed:
		return '*'
	default:
		return '#'
	}
}
