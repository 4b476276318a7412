package main

import (
	"image/color"

	"vecs"

	"tinygo.org/x/drivers"
)

const (
	screenW = 320
	screenH = 320
)

// frameBuffer is a little-endian RGB565 pixel buffer.
type frameBuffer struct {
	w, h int
	buf  []byte
}

func newFrameBuffer(w, h int) *frameBuffer {
	return &frameBuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (fb *frameBuffer) strideBytes() int { return fb.w * 2 }

// display adapts frameBuffer to drivers.Displayer so tinyfont can draw on it.
type display struct {
	fb *frameBuffer
}

func newDisplay(fb *frameBuffer) *display { return &display{fb: fb} }

func (d *display) Size() (x, y int16) {
	return int16(d.fb.w), int16(d.fb.h)
}

func (d *display) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.w || iy < 0 || iy >= d.fb.h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.strideBytes() + ix*2
	d.fb.buf[off] = byte(pixel)
	d.fb.buf[off+1] = byte(pixel >> 8)
}

func (d *display) Display() error { return nil }

func (d *display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.fb.w)
	y0 := clampInt(int(y), 0, d.fb.h)
	x1 := clampInt(int(x)+int(width), 0, d.fb.w)
	y1 := clampInt(int(y)+int(height), 0, d.fb.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.strideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			d.fb.buf[off] = lo
			d.fb.buf[off+1] = hi
		}
	}
	return nil
}

func (d *display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// drawLine draws with Bresenham's algorithm, clipped by SetPixel.
func (d *display) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(x1 - x0)
	if dx < 0 {
		dx = -dx
	}
	dy := -int(y1 - y0)
	if dy > 0 {
		dy = -dy
	}
	sx := int16(-1)
	if x0 < x1 {
		sx = 1
	}
	sy := int16(-1)
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawArrow draws v anchored at origin with a two-stroke head. Screen
// coordinates, so callers flip y themselves.
func (d *display) drawArrow(origin, v vecs.Vec2[float64], c color.RGBA) {
	tip := origin.Add(v)
	d.drawLine(roundInt16(origin.X()), roundInt16(origin.Y()), roundInt16(tip.X()), roundInt16(tip.Y()), c)

	if v.LengthSquared() == 0 {
		return
	}
	const headLen = 7.0
	dir := v.Normalize()
	perp := dir.Normal()
	base := tip.Sub(dir.MulScalar(headLen))
	left := base.Add(perp.MulScalar(headLen / 2))
	right := base.Sub(perp.MulScalar(headLen / 2))
	d.drawLine(roundInt16(tip.X()), roundInt16(tip.Y()), roundInt16(left.X()), roundInt16(left.Y()), c)
	d.drawLine(roundInt16(tip.X()), roundInt16(tip.Y()), roundInt16(right.X()), roundInt16(right.Y()), c)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}
