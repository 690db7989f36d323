package bno055

import (
	"testing"

	"periph.io/x/periph/conn/i2c/i2ctest"
)

func TestRevision(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: Addr, W: []byte{RegAccID}, R: []byte{0xFB, 0x32, 0x0F, 0x11, 0x03, 0x15}},
		},
		DontPanic: true,
	}
	d, _ := testDevice(pb)

	rev, err := d.Revision()
	if err != nil {
		t.Fatalf("Revision() = %v", err)
	}
	want := Revision{
		Accelerometer: 0xFB,
		Magnetometer:  0x32,
		Gyroscope:     0x0F,
		Software:      0x0311,
		Bootloader:    0x15,
	}
	if rev != want {
		t.Errorf("Revision() = %+v, want %+v", rev, want)
	}
}

func TestSystemStatus(t *testing.T) {
	cases := []struct {
		raw  []byte
		want SystemStatus
	}{
		{[]byte{0x05, 0x00}, SystemStatus{Status: 5}},
		{[]byte{0x01, 0x03}, SystemStatus{Status: 1, Error: 3}},
	}

	for _, c := range cases {
		pb := &i2ctest.Playback{
			Ops: []i2ctest.IO{
				{Addr: Addr, W: []byte{RegSysStatus}, R: c.raw},
			},
			DontPanic: true,
		}
		d, _ := testDevice(pb)

		got, err := d.SystemStatus()
		if err != nil {
			t.Fatalf("SystemStatus() = %v", err)
		}
		if got != c.want {
			t.Errorf("SystemStatus(% x) = %+v, want %+v", c.raw, got, c.want)
		}
	}
}

func TestSelfTest(t *testing.T) {
	cases := []struct {
		raw  byte
		want SelfTest
	}{
		{0x0F, SelfTest{Accelerometer: true, Magnetometer: true, Gyroscope: true, MCU: true}},
		{0x0B, SelfTest{Accelerometer: true, Magnetometer: true, MCU: true}},
		{0x00, SelfTest{}},
	}

	for _, c := range cases {
		pb := &i2ctest.Playback{
			Ops: []i2ctest.IO{
				{Addr: Addr, W: []byte{RegSelfTest}, R: []byte{c.raw}},
			},
			DontPanic: true,
		}
		d, _ := testDevice(pb)

		got, err := d.SelfTest()
		if err != nil {
			t.Fatalf("SelfTest() = %v", err)
		}
		if got != c.want {
			t.Errorf("SelfTest(%#02x) = %+v, want %+v", c.raw, got, c.want)
		}
	}
}
