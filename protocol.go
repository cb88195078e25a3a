package st7789v2

import "periph.io/x/conn/v3/gpio"

// window is an inclusive physical address range in controller RAM.
type window struct {
	x0, x1, y0, y1 uint16
}

// out drives one of the control lines, tagging failures with the line name.
func out(p gpio.PinOut, name string, l gpio.Level) error {
	if err := p.Out(l); err != nil {
		return &BusError{Signal: name, Err: err}
	}
	return nil
}

// tx writes bytes on the bus.
func (d *Dev) tx(b []byte) error {
	if err := d.c.Tx(b, nil); err != nil {
		return &BusError{Signal: "spi", Err: err}
	}
	return nil
}

// sendCommand selects the controller and writes a single opcode.
// CS is left asserted for the parameters that follow; release ends the
// group.
func (d *Dev) sendCommand(op byte) error {
	if err := out(d.cs, "cs", gpio.Low); err != nil {
		return err
	}
	if err := out(d.dc, "dc", gpio.Low); err != nil {
		return err
	}
	d.op[0] = op
	return d.tx(d.op[:])
}

// sendData writes parameter or pixel bytes.
func (d *Dev) sendData(b []byte) error {
	if err := out(d.dc, "dc", gpio.High); err != nil {
		return err
	}
	return d.tx(b)
}

// release deselects the controller.
func (d *Dev) release() error {
	return out(d.cs, "cs", gpio.High)
}

// command sends one complete command+parameter group. CS is released even
// when the write fails; the first error is returned.
func (d *Dev) command(op byte, params ...byte) (err error) {
	defer func() {
		if rerr := d.release(); err == nil {
			err = rerr
		}
	}()
	if err = d.sendCommand(op); err != nil {
		return err
	}
	if len(params) != 0 {
		err = d.sendData(params)
	}
	return err
}

// physical translates a logical inclusive range into controller RAM
// coordinates.
func (d *Dev) physical(x0, x1, y0, y1 int) window {
	return window{
		x0: uint16(x0 + d.colOffset),
		x1: uint16(x1 + d.colOffset),
		y0: uint16(y0 + d.rowOffset),
		y1: uint16(y1 + d.rowOffset),
	}
}

// setWindow programs the column and row address ranges for the logical
// inclusive bounds, then starts a memory write. CS is left asserted after
// RAMWR so the caller can stream pixels with sendData and release.
func (d *Dev) setWindow(x0, x1, y0, y1 int) error {
	w := d.physical(x0, x1, y0, y1)
	if err := d.command(_CASET, byte(w.x0>>8), byte(w.x0), byte(w.x1>>8), byte(w.x1)); err != nil {
		return err
	}
	if err := d.command(_RASET, byte(w.y0>>8), byte(w.y0), byte(w.y1>>8), byte(w.y1)); err != nil {
		return err
	}
	return d.sendCommand(_RAMWR)
}
