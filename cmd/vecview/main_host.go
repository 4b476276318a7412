//go:build !tinygo

package main

import (
	"image"
	"log"

	"vecs/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g := &game{s: newScene()}
	ebiten.SetWindowTitle("vecview (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	s     *scene
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	g.s.step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.s.frame()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
		g.fbImg = ebiten.NewImage(fb.w, fb.h)
	}

	src := fb.buf
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		o := i / 2 * 4
		dst[o] = r
		dst[o+1] = gg
		dst[o+2] = b
		dst[o+3] = 0xFF
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
