package viz

import "strings"

// Braille cell layout, 2x4 sub-pixels per terminal cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Lines are drawn at sub-pixel resolution; node glyphs occupy whole
// cells and paint over any braille underneath.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a terminal drawing surface mixing braille line art with
// whole-cell glyphs.
type Canvas struct {
	Width, Height int

	braille []rune // braille accumulation per cell, 0 when empty
	glyphs  []rune // whole-cell overlay, 0 when empty
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:   w,
		Height:  h,
		braille: make([]rune, w*h),
		glyphs:  make([]rune, w*h),
	}
}

func (c *Canvas) Clear() {
	for i := range c.braille {
		c.braille[i] = 0
		c.glyphs[i] = 0
	}
}

// Dot sets one sub-pixel. Coordinates run over (Width*2, Height*4).
func (c *Canvas) Dot(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.braille[row*c.Width+col] |= brailleBits[y%4][x%2]
}

// Glyph places a whole-cell rune at cell coordinates.
func (c *Canvas) Glyph(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.glyphs[row*c.Width+col] = r
}

// Text writes a string starting at cell coordinates, clipped at the
// right edge.
func (c *Canvas) Text(col, row int, s string) {
	for i, r := range []rune(s) {
		c.Glyph(col+i, row, r)
	}
}

// Line draws a sub-pixel line with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Dot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.Width + 1) * c.Height)
	for row := 0; row < c.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.Width; col++ {
			i := row*c.Width + col
			switch {
			case c.glyphs[i] != 0:
				b.WriteRune(c.glyphs[i])
			case c.braille[i] != 0:
				b.WriteRune(brailleBase + c.braille[i])
			default:
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
