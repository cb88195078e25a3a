// Package st7789v2 controls a ST7789V2 TFT LCD via 4-wire SPI.
//
// The ST7789V2 is a 262K color TFT controller with 240×320 pixels of RAM.
// This driver targets the 240×280 panels built around it and implements the
// display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (65K colors)
// - 240×280 visible pixels in a 240×320 RAM, offset by 20 rows on most modules
// - Full-frame updates only, no rotation
// - Display inversion (IPS panels are inverted by default)
//
// # Hardware Connection
//
// Connect the display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → GPIO (any available pin, driven by this package)
//	RST         → GPIO (any available pin)
//	BL          → 3.3V or a PWM capable GPIO
//
// Chip select is driven by this package so that it stays asserted across a
// command and its parameters and for a whole pixel stream. Use a plain GPIO
// rather than the SPI port's CE line.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7789v2"
//		"periph.io/x/devices/v3/st7789v2/image565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		dev, _ := st7789v2.NewSPI(p,
//			gpioreg.ByName("GPIO25"), // DC
//			gpioreg.ByName("GPIO8"),  // CS
//			gpioreg.ByName("GPIO27"), // RST
//			nil)                      // 240×280, row offset 20
//		if err := dev.Init(); err != nil {
//			panic(err)
//		}
//		defer dev.Halt()
//
//		img := image565.New(dev.Bounds())
//		img.Fill(image565.Red)
//		dev.DrawScreen(img.Pix)
//	}
//
// # Panel Geometry
//
// The visible area is placed in controller RAM with Opts.RowOffset and
// Opts.ColOffset. Callers always use logical coordinates; the offset is
// applied when the address window is programmed:
//
//	Opts{W: 240, H: 280, RowOffset: 20} // rows 20..299 of the 320-row RAM
//	Opts{W: 240, H: 240, RowOffset: 0}  // 1.3" square modules
//
// The geometry is validated once by New and NewSPI.
//
// # Drawing
//
// DrawScreen takes a []uint16 of exactly W×H pixels. Each pixel is sent
// high byte first, in row-major order:
//
//	frame := make([]uint16, 240*280)
//	for i := range frame {
//		frame[i] = 0xF800 // red
//	}
//	dev.DrawScreen(frame)
//
// Write does the same for a frame already encoded as bytes, and Draw accepts
// any image.Image, converting it to RGB565 first.
//
// # Errors
//
// Bus failures are reported as *BusError, wrapped in *InitError by Init and
// in *DrawError by the drawing methods. A frame of the wrong size returns
// ErrBufferSize before anything is sent.
//
// # Datasheet
//
// https://www.waveshare.com/w/upload/a/ae/ST7789_Datasheet.pdf
package st7789v2
