package st7789v2

import "time"

// Controller opcodes, see the ST7789V2 datasheet section 9.
const (
	_SWRESET   = 0x01 // Software reset
	_SLPOUT    = 0x11 // Sleep out
	_NORON     = 0x13 // Normal display mode on
	_INVOFF    = 0x20 // Display inversion off
	_INVON     = 0x21 // Display inversion on
	_DISPOFF   = 0x28 // Display off
	_DISPON    = 0x29 // Display on
	_CASET     = 0x2A // Column address set
	_RASET     = 0x2B // Row address set
	_RAMWR     = 0x2C // Memory write
	_MADCTL    = 0x36 // Memory data access control
	_COLMOD    = 0x3A // Interface pixel format
	_PORCTRL   = 0xB2 // Porch setting
	_GCTRL     = 0xB7 // Gate control
	_VCOMS     = 0xBB // VCOM setting
	_LCMCTRL   = 0xC0 // LCM control
	_VDVVRHEN  = 0xC2 // VDV and VRH command enable
	_VRHS      = 0xC3 // VRH set
	_VDVS      = 0xC4 // VDV set
	_FRCTRL2   = 0xC6 // Frame rate control in normal mode
	_PWCTRL1   = 0xD0 // Power control 1
	_PVGAMCTRL = 0xE0 // Positive voltage gamma control
	_NVGAMCTRL = 0xE1 // Negative voltage gamma control
)

const (
	colorModeRGB565 = 0x55 // 65K colors, 16 bit/pixel
	madctlNormal    = 0x00 // MY=0 MX=0 MV=0 ML=0 RGB MH=0
)

// Hardware reset timing. The pulse only needs 10µs but the controller takes
// up to 120ms to finish its internal reset once RST is released.
const (
	resetIdle    = 10 * time.Millisecond
	resetPulse   = 120 * time.Millisecond
	resetRelease = 150 * time.Millisecond
)

// step is a single command+parameter group of the initialization sequence,
// followed by a mandatory settle delay.
type step struct {
	name   string
	op     byte
	params []byte
	delay  time.Duration
}

// initSequence is sent verbatim after the hardware reset. The order matches
// the datasheet power-on flow; the tuning values are the panel vendor's and
// are not computed.
var initSequence = []step{
	// Reset every register to its default. 5ms is the minimum, 120ms are
	// needed before SLPOUT when the panel was sleeping.
	{name: "software reset", op: _SWRESET, delay: 150 * time.Millisecond},
	// Leave sleep mode; the booster and regulators need 120ms to settle.
	{name: "sleep out", op: _SLPOUT, delay: 120 * time.Millisecond},
	// RGB565 on the 4-line serial interface.
	{name: "pixel format", op: _COLMOD, params: []byte{colorModeRGB565}, delay: 10 * time.Millisecond},
	// Fixed scan direction, no rotation nor mirroring.
	{name: "memory access control", op: _MADCTL, params: []byte{madctlNormal}, delay: 10 * time.Millisecond},

	// Panel tuning.
	{name: "porch", op: _PORCTRL, params: []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}},
	{name: "gate control", op: _GCTRL, params: []byte{0x35}},
	{name: "vcom", op: _VCOMS, params: []byte{0x1F}},
	{name: "lcm control", op: _LCMCTRL, params: []byte{0x2C}},
	{name: "vdv vrh enable", op: _VDVVRHEN, params: []byte{0x01}},
	{name: "vrh", op: _VRHS, params: []byte{0x12}},
	{name: "vdv", op: _VDVS, params: []byte{0x20}},
	{name: "frame rate", op: _FRCTRL2, params: []byte{0x0F}}, // 60Hz
	{name: "power control", op: _PWCTRL1, params: []byte{0xA4, 0xA1}},
	{name: "positive gamma", op: _PVGAMCTRL, params: []byte{0xD0, 0x08, 0x11, 0x08, 0x0C, 0x15, 0x39, 0x33, 0x50, 0x36, 0x13, 0x14, 0x29, 0x2D}},
	{name: "negative gamma", op: _NVGAMCTRL, params: []byte{0xD0, 0x08, 0x10, 0x08, 0x06, 0x06, 0x39, 0x44, 0x51, 0x0B, 0x16, 0x14, 0x2F, 0x31}},
	// IPS glass is wired inverted.
	{name: "inversion on", op: _INVON},
	{name: "normal mode", op: _NORON},

	{name: "display on", op: _DISPON, delay: 10 * time.Millisecond},
}
