// Package bno055 controls a Bosch BNO055 absolute orientation sensor over
// I²C.
//
// The BNO055 combines an accelerometer, a gyroscope and a magnetometer
// with fusion firmware that computes orientation on chip, so readings come
// out as calibrated physical units and no host-side filtering is needed.
// The driver verifies the chip identity, walks the device through its
// power-on sequence and maps the data registers to typed readings.
//
// Datasheet:
// https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bno055-ds000.pdf
package bno055

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

var (
	// ErrNotDevice throws an error when the chip ID read during
	// initialization does not match a BNO055 signature (0xA0).
	ErrNotDevice error = errors.New("bno055: chip ID does not match (0xA0)")
)

// Device defines a BNO055 device.
//
// A Device holds no shadow of the sensor state: power mode, operating mode
// and calibration live on the chip and are read back when needed.
type Device struct {
	dev *i2c.Dev
	bus i2c.BusCloser // only set when New opened the bus

	busName string
	addr    uint16
	mode    OperatingMode

	sleep func(time.Duration)
}

func newDevice(options []Option) *Device {
	d := &Device{
		addr:  Addr,
		mode:  ModeNDOF,
		sleep: time.Sleep,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// New returns a new BNO055 device on the first available I²C bus, verified
// and initialized into NDOF fusion mode. Use OnBus, OnAddr and WithMode to
// change the defaults. The bus is owned by the device and released by
// Close.
func New(options ...Option) (*Device, error) {
	d := newDevice(options)

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("bno055: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(d.busName)
	if err != nil {
		return nil, fmt.Errorf("bno055: could not open I2C bus: %w", err)
	}
	d.bus = bus
	d.dev = &i2c.Dev{
		Addr: d.addr,
		Bus:  bus,
	}

	if err := d.Initialize(d.mode); err != nil {
		bus.Close()
		return nil, err
	}

	return d, nil
}

// Open returns a new BNO055 device on an already opened bus, verified and
// initialized the same way New does it. The bus stays owned by the caller
// and is left open by Close.
func Open(bus i2c.Bus, options ...Option) (*Device, error) {
	d := newDevice(options)
	d.dev = &i2c.Dev{
		Addr: d.addr,
		Bus:  bus,
	}

	if err := d.Initialize(d.mode); err != nil {
		return nil, err
	}

	return d, nil
}

// Close suspends the sensor and, when New opened the bus, releases it. A
// device built with Open leaves the bus untouched.
func (d *Device) Close() error {
	if d.bus == nil {
		return nil
	}
	err := d.SetPowerMode(PowerSuspend)
	if cerr := d.bus.Close(); err == nil {
		err = cerr
	}
	return err
}

// Initialize verifies the chip identity and runs the power-on sequence:
// normal power mode, register page 0, system trigger, a 10 ms settle, and
// finally the requested operating mode. The sequence stops at the first
// failed step.
func (d *Device) Initialize(mode OperatingMode) error {
	id, err := d.Read(RegChipID)
	if err != nil {
		return fmt.Errorf("bno055: could not get chip ID: %w", err)
	}
	if id != ChipID {
		return fmt.Errorf("bno055: got chip ID %#02x: %w", id, ErrNotDevice)
	}

	if err := d.SetPowerMode(PowerNormal); err != nil {
		return fmt.Errorf("bno055: could not set normal power mode: %w", err)
	}
	if err := d.writeCmd(RegPageID); err != nil {
		return fmt.Errorf("bno055: could not select register page 0: %w", err)
	}
	if err := d.writeCmd(RegSysTrigger); err != nil {
		return fmt.Errorf("bno055: could not write system trigger: %w", err)
	}
	d.sleep(10 * time.Millisecond) // settling time after the trigger

	return d.SetMode(mode)
}

// SetMode switches the operating mode of the device. Entering
// configuration mode blocks for the 19 ms switching time of the chip;
// every other transition returns as soon as the write completes.
func (d *Device) SetMode(mode OperatingMode) error {
	if err := d.Write(RegOprMode, byte(mode)); err != nil {
		return fmt.Errorf("bno055: could not set operating mode: %w", err)
	}
	if mode == ModeConfig {
		d.sleep(19 * time.Millisecond)
	}
	return nil
}

// SetPowerMode switches the power state of the device. PowerNormal is
// restored by writing the bare register address, which is how the chip
// encodes it; PowerLow and PowerSuspend carry their mode byte.
func (d *Device) SetPowerMode(mode PowerMode) error {
	if mode == PowerNormal {
		return d.writeCmd(RegPwrMode)
	}
	return d.Write(RegPwrMode, byte(mode))
}

// Read reads a single byte from a register.
func (d *Device) Read(reg byte) (byte, error) {
	b := make([]byte, 1)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return 0, fmt.Errorf("bno055: could not read register %#02x: %w", reg, err)
	}

	return b[0], nil
}

// ReadBytes reads n bytes starting at a register.
func (d *Device) ReadBytes(reg byte, n int) ([]byte, error) {
	b := make([]byte, n)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return nil, fmt.Errorf("bno055: could not read %d bytes from register %#02x: %w", n, reg, err)
	}

	return b, nil
}

// Write writes a byte to a register.
func (d *Device) Write(reg, data byte) error {
	if err := d.dev.Tx([]byte{reg, data}, nil); err != nil {
		return fmt.Errorf("bno055: could not write register %#02x: %w", reg, err)
	}

	return nil
}

// writeCmd writes a bare register address with no payload. The chip uses
// this form to select page 0, fire the system trigger and restore normal
// power mode.
func (d *Device) writeCmd(reg byte) error {
	if err := d.dev.Tx([]byte{reg}, nil); err != nil {
		return fmt.Errorf("bno055: could not write register %#02x: %w", reg, err)
	}

	return nil
}
