package bno055

import "fmt"

// CalibrationStatus reports the calibration confidence the fusion firmware
// maintains for each subsystem, from 0 (not calibrated) to 3 (fully
// calibrated).
type CalibrationStatus struct {
	System        uint8
	Gyroscope     uint8
	Accelerometer uint8
	Magnetometer  uint8
}

// Calibration returns the calibration confidence of every subsystem.
func (d *Device) Calibration() (CalibrationStatus, error) {
	b, err := d.Read(RegCalibStat)
	if err != nil {
		return CalibrationStatus{}, fmt.Errorf("bno055: could not read calibration status: %w", err)
	}

	return CalibrationStatus{
		System:        b >> 6 & 0x03,
		Gyroscope:     b >> 4 & 0x03,
		Accelerometer: b >> 2 & 0x03,
		Magnetometer:  b & 0x03,
	}, nil
}

// IsFullyCalibrated reports whether every subsystem reached the maximum
// calibration confidence. Fused readings are trustworthy once this returns
// true; NDOF mode usually needs the sensor moved through a few figure
// eights to get there.
func (d *Device) IsFullyCalibrated() (bool, error) {
	c, err := d.Calibration()
	if err != nil {
		return false, err
	}

	return c.System == 3 && c.Gyroscope == 3 && c.Accelerometer == 3 && c.Magnetometer == 3, nil
}
