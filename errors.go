package st7789v2

import (
	"errors"
	"fmt"
)

// ErrBufferSize is returned when a frame does not hold exactly W*H pixels.
// Nothing is sent to the panel in that case.
var ErrBufferSize = errors.New("st7789v2: invalid buffer size")

// BusError reports a failed SPI write or pin level change.
//
// Signal is one of "spi", "dc", "cs" or "rst". Err is the error returned by
// the underlying periph.io connection or pin, unchanged.
type BusError struct {
	Signal string
	Err    error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("st7789v2: %s: %v", e.Signal, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// InitError reports a bus failure during Init. The controller configuration
// is unknown afterwards and Init must succeed before drawing.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("st7789v2: init failed at %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// DrawError reports a bus failure during a frame transfer. The panel content
// is undefined until the next successful transfer.
type DrawError struct {
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("st7789v2: draw failed: %v", e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
