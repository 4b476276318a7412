//go:build tinygo

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/st7789"
)

func main() {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 62_500_000,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
	})

	lcd := st7789.New(machine.SPI0,
		machine.GP0, // reset
		machine.GP1, // dc
		machine.GP2, // cs
		machine.GP3, // backlight
	)
	lcd.Configure(st7789.Config{
		Width:  screenW,
		Height: screenH,
	})

	s := newScene()
	fb := s.frame()
	tx := make([]byte, len(fb.buf))
	for {
		s.step()

		// The framebuffer stores RGB565 little-endian; the panel wants
		// big-endian.
		for i := 0; i+1 < len(fb.buf); i += 2 {
			tx[i] = fb.buf[i+1]
			tx[i+1] = fb.buf[i]
		}
		_ = lcd.DrawRGBBitmap8(0, 0, tx, screenW, screenH)

		time.Sleep(16 * time.Millisecond)
	}
}
