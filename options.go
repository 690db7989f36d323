package bno055

// An Option configures a device.
type Option func(d *Device) Option

// OnBus can be used to specify I²C bus name
// ("/dev/i2c-1", "I2C1", "1"). By default, the bus name is "", which selects
// the first available bus. It only affects New; Open takes the bus from the
// caller.
func OnBus(name string) Option {
	return func(d *Device) Option {
		old := d.busName
		d.busName = name
		return OnBus(old)
	}
}

// OnAddr can be used to specify the alternative I²C address. The BNO055
// answers on 0x28 by default, or 0x29 when the COM3 pin is pulled high.
func OnAddr(addr uint16) Option {
	return func(d *Device) Option {
		old := d.addr
		d.addr = addr
		return OnAddr(old)
	}
}

// WithMode selects the operating mode entered at the end of
// initialization. By default, the device is put into ModeNDOF, the full
// nine degrees of freedom fusion.
func WithMode(mode OperatingMode) Option {
	return func(d *Device) Option {
		old := d.mode
		d.mode = mode
		return WithMode(old)
	}
}
