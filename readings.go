package bno055

import "fmt"

// Vector holds a three-axis sample in the unit of the reading that
// produced it.
type Vector struct {
	X, Y, Z float64
}

// Euler holds an absolute orientation as heading, roll and pitch angles in
// degrees.
type Euler struct {
	Heading, Roll, Pitch float64
}

// Quaternion holds an absolute orientation as a unit quaternion.
type Quaternion struct {
	W, X, Y, Z float64
}

// Acceleration returns the accelerometer reading in m/s², gravity
// included.
func (d *Device) Acceleration() (Vector, error) {
	v, err := d.vector(RegAccData, accScale)
	if err != nil {
		return Vector{}, fmt.Errorf("bno055: could not read acceleration: %w", err)
	}
	return v, nil
}

// LinearAcceleration returns the acceleration in m/s² with the gravity
// component removed by the fusion firmware.
func (d *Device) LinearAcceleration() (Vector, error) {
	v, err := d.vector(RegLIAData, accScale)
	if err != nil {
		return Vector{}, fmt.Errorf("bno055: could not read linear acceleration: %w", err)
	}
	return v, nil
}

// Gravity returns the gravity vector in m/s² as isolated by the fusion
// firmware.
func (d *Device) Gravity() (Vector, error) {
	v, err := d.vector(RegGrvData, accScale)
	if err != nil {
		return Vector{}, fmt.Errorf("bno055: could not read gravity: %w", err)
	}
	return v, nil
}

// AngularVelocity returns the gyroscope reading in degrees per second.
func (d *Device) AngularVelocity() (Vector, error) {
	v, err := d.vector(RegGyrData, gyrScale)
	if err != nil {
		return Vector{}, fmt.Errorf("bno055: could not read angular velocity: %w", err)
	}
	return v, nil
}

// MagneticField returns the magnetometer reading in µT.
func (d *Device) MagneticField() (Vector, error) {
	v, err := d.vector(RegMagData, magScale)
	if err != nil {
		return Vector{}, fmt.Errorf("bno055: could not read magnetic field: %w", err)
	}
	return v, nil
}

// Euler returns the fused orientation as Euler angles in degrees.
func (d *Device) Euler() (Euler, error) {
	buf, err := d.ReadBytes(RegEulData, 6)
	if err != nil {
		return Euler{}, fmt.Errorf("bno055: could not read Euler angles: %w", err)
	}

	return Euler{
		Heading: float64(s16(buf[0], buf[1])) / eulScale,
		Roll:    float64(s16(buf[2], buf[3])) / eulScale,
		Pitch:   float64(s16(buf[4], buf[5])) / eulScale,
	}, nil
}

// Quaternion returns the fused orientation as a unit quaternion.
func (d *Device) Quaternion() (Quaternion, error) {
	buf, err := d.ReadBytes(RegQuaData, 8)
	if err != nil {
		return Quaternion{}, fmt.Errorf("bno055: could not read quaternion: %w", err)
	}

	return Quaternion{
		W: float64(s16(buf[0], buf[1])) / quaScale,
		X: float64(s16(buf[2], buf[3])) / quaScale,
		Y: float64(s16(buf[4], buf[5])) / quaScale,
		Z: float64(s16(buf[6], buf[7])) / quaScale,
	}, nil
}

// Temperature returns the die temperature in °C. The chip reports whole
// degrees in a single signed byte; no scaling is applied.
func (d *Device) Temperature() (int, error) {
	b, err := d.Read(RegTemp)
	if err != nil {
		return 0, fmt.Errorf("bno055: could not read temperature: %w", err)
	}

	return int(int8(b)), nil
}

// vector reads six bytes at reg and decodes three little-endian signed
// 16-bit axes at the given scale.
func (d *Device) vector(reg byte, scale float64) (Vector, error) {
	buf, err := d.ReadBytes(reg, 6)
	if err != nil {
		return Vector{}, err
	}

	return Vector{
		X: float64(s16(buf[0], buf[1])) / scale,
		Y: float64(s16(buf[2], buf[3])) / scale,
		Z: float64(s16(buf[4], buf[5])) / scale,
	}, nil
}

// s16 assembles a little-endian two's complement 16-bit value.
func s16(lo, hi byte) int16 {
	return int16(uint16(lo) | uint16(hi)<<8)
}
