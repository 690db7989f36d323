package bno055

import "fmt"

// Revision holds the identification and firmware revision bytes reported
// by each subsystem of the device.
type Revision struct {
	Software      uint16
	Bootloader    byte
	Accelerometer byte
	Magnetometer  byte
	Gyroscope     byte
}

// Revision returns the identification and revision report of the device.
func (d *Device) Revision() (Revision, error) {
	buf, err := d.ReadBytes(RegAccID, 6)
	if err != nil {
		return Revision{}, fmt.Errorf("bno055: could not read revision: %w", err)
	}

	return Revision{
		Accelerometer: buf[0],
		Magnetometer:  buf[1],
		Gyroscope:     buf[2],
		Software:      uint16(buf[3]) | uint16(buf[4])<<8,
		Bootloader:    buf[5],
	}, nil
}

// SystemStatus reports the state of the on-chip system.
//
// Status values: 0 idle, 1 system error, 2 initializing peripherals, 3
// system initialization, 4 executing self-test, 5 fusion algorithm
// running, 6 running without fusion. Error holds the SYS_ERR code and is
// only meaningful when Status is 1.
type SystemStatus struct {
	Status byte
	Error  byte
}

// SystemStatus returns the current system state and error code of the
// device.
func (d *Device) SystemStatus() (SystemStatus, error) {
	buf, err := d.ReadBytes(RegSysStatus, 2)
	if err != nil {
		return SystemStatus{}, fmt.Errorf("bno055: could not read system status: %w", err)
	}

	return SystemStatus{
		Status: buf[0],
		Error:  buf[1],
	}, nil
}

// SelfTest reports the power-on self-test result of each subsystem; true
// means the test passed.
type SelfTest struct {
	Accelerometer bool
	Magnetometer  bool
	Gyroscope     bool
	MCU           bool
}

// SelfTest returns the power-on self-test results of the device.
func (d *Device) SelfTest() (SelfTest, error) {
	b, err := d.Read(RegSelfTest)
	if err != nil {
		return SelfTest{}, fmt.Errorf("bno055: could not read self-test result: %w", err)
	}

	return SelfTest{
		Accelerometer: b&0x01 != 0,
		Magnetometer:  b&0x02 != 0,
		Gyroscope:     b&0x04 != 0,
		MCU:           b&0x08 != 0,
	}, nil
}
