package main

import (
	"fmt"
	"image/color"
	"math"

	"vecs"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG   = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorAxis = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorA    = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorB    = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colorSum  = color.RGBA{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF}
	colorPerp = color.RGBA{R: 0xFF, G: 0x7F, B: 0xFF, A: 0xFF}
	colorUnit = color.RGBA{R: 0xFF, G: 0x7F, B: 0x7F, A: 0xFF}
	colorCube = color.RGBA{R: 0x7F, G: 0xC9, B: 0xFF, A: 0xFF}
)

// scene animates two panels: 2D vector arithmetic on the left, an orbiting
// wireframe cube on the right.
type scene struct {
	fb *frameBuffer
	d  *display
	t  float64
}

func newScene() *scene {
	fb := newFrameBuffer(screenW, screenH)
	return &scene{fb: fb, d: newDisplay(fb)}
}

func (s *scene) frame() *frameBuffer { return s.fb }

func (s *scene) step() {
	s.render()
	s.t += 1.0 / 60
}

func (s *scene) render() {
	_ = s.d.FillRectangle(0, 0, screenW, screenH, colorBG)
	s.renderVectors()
	s.renderCube()
	s.d.drawLine(screenW/2, 0, screenW/2, screenH-1, colorAxis)
}

// renderVectors draws a, b and the derived vectors around a fixed origin.
// The framebuffer y axis grows downward, so vectors are flipped on y before
// drawing.
func (s *scene) renderVectors() {
	center := vecs.V2(float64(screenW)/4, float64(screenH)/2)
	s.d.drawLine(0, int16(screenH/2), screenW/2-1, int16(screenH/2), colorAxis)
	s.d.drawLine(int16(screenW/4), 0, int16(screenW/4), screenH-1, colorAxis)

	a := vecs.V2(math.Cos(s.t), math.Sin(s.t)).MulScalar(55)
	b := vecs.V2(math.Cos(1-0.7*s.t), math.Sin(1-0.7*s.t)).MulScalar(40)
	flip := vecs.V2(1.0, -1.0)

	s.d.drawArrow(center, a.Mul(flip), colorA)
	s.d.drawArrow(center, b.Mul(flip), colorB)
	s.d.drawArrow(center, a.Add(b).Mul(flip), colorSum)
	s.d.drawArrow(center, a.Normal().Mul(flip), colorPerp)
	s.d.drawArrow(center, a.Normalize().MulScalar(28).Mul(flip), colorUnit)

	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(s.d, font, 4, 12, "a", colorA)
	tinyfont.WriteLine(s.d, font, 14, 12, "b", colorB)
	tinyfont.WriteLine(s.d, font, 24, 12, "a+b", colorSum)
	tinyfont.WriteLine(s.d, font, 50, 12, "normal", colorPerp)
	tinyfont.WriteLine(s.d, font, 96, 12, "unit", colorUnit)
	tinyfont.WriteLine(s.d, font, 4, int16(screenH-18), fmt.Sprintf("dot(a,b)=%7.1f", a.Dot(b)), colorFG)
	tinyfont.WriteLine(s.d, font, 4, int16(screenH-6), fmt.Sprintf("|a+b|  =%7.1f", a.Add(b).Length()), colorFG)
}

var cubeVerts = [8]vecs.Vec3[float64]{
	vecs.V3(-1.0, -1.0, -1.0),
	vecs.V3(1.0, -1.0, -1.0),
	vecs.V3(1.0, 1.0, -1.0),
	vecs.V3(-1.0, 1.0, -1.0),
	vecs.V3(-1.0, -1.0, 1.0),
	vecs.V3(1.0, -1.0, 1.0),
	vecs.V3(1.0, 1.0, 1.0),
	vecs.V3(-1.0, 1.0, 1.0),
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// renderCube projects a unit cube through a camera basis built from cross
// products, with the eye orbiting the origin.
func (s *scene) renderCube() {
	eye := vecs.V3(math.Cos(0.6*s.t), 0.45, math.Sin(0.6*s.t)).MulScalar(3.2)
	fwd := eye.Neg().Normalize()
	right := fwd.Cross(vecs.V3(0.0, 1.0, 0.0)).Normalize()
	up := right.Cross(fwd)

	center := vecs.V2(3*float64(screenW)/4, float64(screenH)/2)
	for _, e := range cubeEdges {
		p0, ok0 := projectPoint(cubeVerts[e[0]], eye, right, up, fwd, center)
		p1, ok1 := projectPoint(cubeVerts[e[1]], eye, right, up, fwd, center)
		if !ok0 || !ok1 {
			continue
		}
		s.d.drawLine(
			roundInt16(p0.X()), roundInt16(p0.Y()),
			roundInt16(p1.X()), roundInt16(p1.Y()),
			colorCube,
		)
	}

	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(s.d, font, int16(screenW/2+4), 12, "camera basis via cross", colorDim)
}

// projectPoint maps a world point to screen coordinates through the camera
// basis. Points at or behind the eye plane are rejected.
func projectPoint(p, eye, right, up, fwd vecs.Vec3[float64], center vecs.Vec2[float64]) (vecs.Vec2[float64], bool) {
	rel := p.Sub(eye)
	depth := rel.Dot(fwd)
	if depth <= 0.2 {
		return vecs.Vec2[float64]{}, false
	}
	k := 130.0 / depth
	return center.Add(vecs.V2(rel.Dot(right)*k, -rel.Dot(up)*k)), true
}
