package model

import "fmt"

// Color is a 24-bit RGB value (0xRRGGBB).
type Color uint32

// ColorMax is the largest valid color value.
const ColorMax Color = 0xFFFFFF

func (c Color) String() string { return fmt.Sprintf("#%06x", uint32(c)) }
