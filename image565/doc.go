// Package image565 provides the 16-bit RGB565 framebuffer used by the ST7789V2 driver.
//
// Each pixel is one uint16 with red in bits 15-11, green in bits 10-5 and blue
// in bits 4-0. Pixels are stored row-major from the top-left corner, which is
// the exact order the controller expects after a memory write command.
//
//	Color:  pure red   pure green  pure blue  white
//	Value:  0xF800     0x07E0      0x001F     0xFFFF
//	Bytes:  F8 00      07 E0       00 1F      FF FF   (as sent on the bus)
//
// This package provides:
//
// - RGB565: a color.Color holding a packed 16-bit value
// - Model: a color model converting standard Go colors to RGB565
// - Image: an image.Image whose Pix slice can be passed to Dev.DrawScreen
//
// Image also implements the tinygo.org/x/drivers Displayer interface, so the
// tinyfont and tinydraw packages can render straight into it:
//
//	img := image565.New(image.Rect(0, 0, 240, 280))
//	tinyfont.WriteLine(img, &proggy.TinySZ8pt7b, 10, 20, "hello", color.RGBA{R: 0xFF, A: 0xFF})
//	dev.DrawScreen(img.Pix)
package image565
