package bno055

// Register addresses (page 0)
const (
	RegChipID     = 0x00
	RegAccID      = 0x01
	RegMagID      = 0x02
	RegGyrID      = 0x03
	RegSWRevLSB   = 0x04
	RegSWRevMSB   = 0x05
	RegBLRev      = 0x06
	RegPageID     = 0x07
	RegAccData    = 0x08
	RegMagData    = 0x0E
	RegGyrData    = 0x14
	RegEulData    = 0x1A
	RegQuaData    = 0x20
	RegLIAData    = 0x28
	RegGrvData    = 0x2E
	RegTemp       = 0x34
	RegCalibStat  = 0x35
	RegSelfTest   = 0x36
	RegSysStatus  = 0x39
	RegSysErr     = 0x3A
	RegOprMode    = 0x3D
	RegPwrMode    = 0x3E
	RegSysTrigger = 0x3F
)

// Device constants
const (
	Addr    = 0x28 // COM3 pin low (default)
	AddrAlt = 0x29 // COM3 pin high
	ChipID  = 0xA0
)

// OperatingMode selects which sensors run and whether the fusion firmware
// combines them. The constant value is the OPR_MODE register byte.
type OperatingMode byte

// Operating modes
const (
	ModeConfig     OperatingMode = 0x00
	ModeAccOnly    OperatingMode = 0x01
	ModeMagOnly    OperatingMode = 0x02
	ModeGyroOnly   OperatingMode = 0x03
	ModeAccMag     OperatingMode = 0x04
	ModeAccGyro    OperatingMode = 0x05
	ModeMagGyro    OperatingMode = 0x06
	ModeAMG        OperatingMode = 0x07
	ModeIMU        OperatingMode = 0x08
	ModeCompass    OperatingMode = 0x09
	ModeM4G        OperatingMode = 0x0A
	ModeNDOFFMCOff OperatingMode = 0x0B
	ModeNDOF       OperatingMode = 0x0C
)

// PowerMode selects the power state of the device. The constant value is
// the PWR_MODE register byte; PowerNormal is encoded on the wire as a bare
// register address with no payload.
type PowerMode byte

// Power modes
const (
	PowerNormal  PowerMode = 0x00
	PowerLow     PowerMode = 0x01
	PowerSuspend PowerMode = 0x02
)

// Output scaling, in LSB per physical unit at the power-on unit selection.
const (
	accScale = 100.0   // m/s², also linear acceleration and gravity
	magScale = 16.0    // µT
	gyrScale = 16.0    // °/s
	eulScale = 16.0    // degrees
	quaScale = 16384.0 // unit quaternion
)
