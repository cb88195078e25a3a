package st7789v2

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/st7789v2/image565"
)

// Controller RAM size.
const (
	PhysicalW = 240
	PhysicalH = 320
)

// DefaultOpts matches the common 1.69" 240x280 module, where the visible
// rows are centered in controller RAM.
var DefaultOpts = Opts{
	W:         240,
	H:         280,
	RowOffset: 20,
	ColOffset: 0,
	MaxHz:     62500 * physic.KiloHertz,
	ChunkSize: 4096,
}

// Opts is the configuration for the ST7789V2 display.
type Opts struct {
	// Visible area in pixels
	W int // Width (default: 240, must be ≤240)
	H int // Height (default: 280, must be ≤320)

	// Position of the visible area in controller RAM. RowOffset+H must be
	// ≤320 and ColOffset+W must be ≤240.
	RowOffset int
	ColOffset int

	// SPI clock used by NewSPI (default: 62.5MHz, the controller's limit
	// for write cycles).
	MaxHz physic.Frequency

	// Largest single SPI write when streaming pixels (default: 4096). It is
	// further capped by one frame (W*H*2) and by the connection's MaxTxSize
	// when reported.
	ChunkSize int

	// Sleep blocks during reset and initialization (default: time.Sleep).
	Sleep func(time.Duration)
}

// Dev is the device handle for the ST7789V2 display.
//
// Dev is not safe for concurrent use. It owns the SPI connection and the
// three control pins for its whole lifetime.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection, chip select not managed by the port
	dc  gpio.PinOut // Data/Command pin, low for commands
	cs  gpio.PinOut // Chip select, active low
	rst gpio.PinOut // Reset, active low

	sleep func(time.Duration)

	// Display geometry
	rect      image.Rectangle
	rowOffset int
	colOffset int

	// Scratch space; op holds a single opcode, chunk the byte-split pixels.
	op    [1]byte
	chunk []byte
}

// NewSPI creates a new ST7789V2 device connected via SPI.
//
// The SPI port is configured for opts.MaxHz, Mode3 (CPOL=1, CPHA=1), 8-bit
// transfers, with chip select driven by the cs pin instead of the port.
//
// opts can be nil to use DefaultOpts. The display is not initialized; call
// Init before drawing.
func NewSPI(p spi.Port, dc, cs, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	o, err := resolveOpts(opts)
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(o.MaxHz, spi.Mode3|spi.NoCS, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, dc, cs, rst, o)
}

// New creates a new ST7789V2 device on an already established connection.
//
// opts can be nil to use DefaultOpts.
func New(c conn.Conn, dc, cs, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	o, err := resolveOpts(opts)
	if err != nil {
		return nil, err
	}
	return newDev(c, dc, cs, rst, o)
}

// resolveOpts applies defaults and validates the geometry.
func resolveOpts(opts *Opts) (Opts, error) {
	if opts == nil {
		return DefaultOpts, nil
	}
	o := *opts
	if o.W == 0 && o.H == 0 {
		o.W, o.H = DefaultOpts.W, DefaultOpts.H
	}
	if o.MaxHz == 0 {
		o.MaxHz = DefaultOpts.MaxHz
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultOpts.ChunkSize
	}

	if o.W <= 0 || o.W > PhysicalW {
		return o, errors.New("st7789v2: width must be between 1 and 240")
	}
	if o.H <= 0 || o.H > PhysicalH {
		return o, errors.New("st7789v2: height must be between 1 and 320")
	}
	if o.RowOffset < 0 || o.RowOffset+o.H > PhysicalH {
		return o, errors.New("st7789v2: row offset places the visible area outside controller RAM")
	}
	if o.ColOffset < 0 || o.ColOffset+o.W > PhysicalW {
		return o, errors.New("st7789v2: column offset places the visible area outside controller RAM")
	}
	if o.ChunkSize < 2 || o.ChunkSize%2 != 0 {
		return o, errors.New("st7789v2: chunk size must be even and at least 2")
	}
	// No stream is longer than one frame.
	if frame := o.W * o.H * 2; o.ChunkSize > frame {
		o.ChunkSize = frame
	}
	return o, nil
}

func newDev(c conn.Conn, dc, cs, rst gpio.PinOut, o Opts) (*Dev, error) {
	if dc == nil || cs == nil || rst == nil {
		return nil, errors.New("st7789v2: dc, cs and rst pins are required")
	}
	chunk := o.ChunkSize
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize() &^ 1; m > 0 && m < chunk {
			chunk = m
		}
	}
	sleep := o.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Dev{
		c:         c,
		dc:        dc,
		cs:        cs,
		rst:       rst,
		sleep:     sleep,
		rect:      image.Rect(0, 0, o.W, o.H),
		rowOffset: o.RowOffset,
		colOffset: o.ColOffset,
		chunk:     make([]byte, chunk),
	}, nil
}

// Init resets the controller and sends the power-on configuration.
//
// It blocks for roughly half a second. Calling it again repeats the whole
// sequence. On failure the returned error is an *InitError and the
// controller state is unknown.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return &InitError{Step: "hardware reset", Err: err}
	}
	for _, s := range initSequence {
		if err := d.command(s.op, s.params...); err != nil {
			return &InitError{Step: s.name, Err: err}
		}
		if s.delay > 0 {
			d.sleep(s.delay)
		}
	}
	return nil
}

// reset pulses the active low RST line.
func (d *Dev) reset() error {
	if err := out(d.rst, "rst", gpio.High); err != nil {
		return err
	}
	d.sleep(resetIdle)
	if err := out(d.rst, "rst", gpio.Low); err != nil {
		return err
	}
	d.sleep(resetPulse)
	if err := out(d.rst, "rst", gpio.High); err != nil {
		return err
	}
	d.sleep(resetRelease)
	return nil
}

// DrawScreen sends a full frame of RGB565 pixels, row-major from the
// top-left corner. fb must hold exactly W*H pixels, otherwise ErrBufferSize
// is returned and nothing is sent.
//
// Bus failures are returned as *DrawError; the panel content is undefined
// afterwards but the device can be used again.
func (d *Dev) DrawScreen(fb []uint16) error {
	if len(fb) != d.rect.Dx()*d.rect.Dy() {
		return ErrBufferSize
	}
	return d.writeFrame(func(dst []byte, off int) int {
		n := 0
		for _, px := range fb[off/2:] {
			if n+2 > len(dst) {
				break
			}
			dst[n] = byte(px >> 8)
			dst[n+1] = byte(px)
			n += 2
		}
		return n
	}, len(fb)*2)
}

// Write writes raw pixel data to the display: big-endian RGB565, two bytes
// per pixel, exactly W*H*2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != d.rect.Dx()*d.rect.Dy()*2 {
		return 0, ErrBufferSize
	}
	err := d.writeFrame(func(dst []byte, off int) int {
		return copy(dst, pixels[off:])
	}, len(pixels))
	if err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// writeFrame programs the full window and streams total bytes produced by
// fill, one chunk per SPI write. CS stays asserted for the whole stream and
// is released on every path.
func (d *Dev) writeFrame(fill func(dst []byte, off int) int, total int) (err error) {
	defer func() {
		if rerr := d.release(); err == nil && rerr != nil {
			err = &DrawError{Err: rerr}
		}
	}()
	if err := d.setWindow(0, d.rect.Dx()-1, 0, d.rect.Dy()-1); err != nil {
		return &DrawError{Err: err}
	}
	if err := out(d.dc, "dc", gpio.High); err != nil {
		return &DrawError{Err: err}
	}
	for off := 0; off < total; {
		n := fill(d.chunk, off)
		if err := d.tx(d.chunk[:n]); err != nil {
			return &DrawError{Err: err}
		}
		off += n
	}
	return nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// The whole frame is always sent: src is rendered into a blank frame over r
// and the result goes through DrawScreen. A full-size *image565.Image drawn
// at the origin is sent as is. Nothing is sent when r misses the panel.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if r.Intersect(d.rect).Empty() {
		return nil
	}
	if img, ok := src.(*image565.Image); ok && r == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		return d.DrawScreen(img.Pix)
	}
	next := image565.New(d.rect)
	// draw.Draw clips r and moves sp to match.
	draw.Draw(next, r, src, sp, draw.Src)
	return d.DrawScreen(next.Pix)
}

// Invert turns display inversion on or off.
func (d *Dev) Invert(invert bool) error {
	op := byte(_INVOFF)
	if invert {
		op = _INVON
	}
	return d.command(op)
}

// Halt turns the display off. RAM content is kept; Init turns it back on.
func (d *Dev) Halt() error {
	return d.command(_DISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789v2.Dev{%dx%d@%d,%d}", d.rect.Dx(), d.rect.Dy(), d.colOffset, d.rowOffset)
}

var _ display.Drawer = &Dev{}
