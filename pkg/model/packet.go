package model

// Wire structs for the F1 2018 UDP telemetry protocol. All packets are
// little-endian with no padding and carry data for every car in the session.

const (
	// NumCars is the number of car slots in every packet.
	NumCars = 20
	// MaxPacketSize is the size of the largest packet (car telemetry).
	MaxPacketSize = 1341
)

type PacketHeader struct {
	PacketFormat    uint16
	PacketVersion   uint8
	PacketID        uint8
	SessionUID      uint64
	SessionTime     float32
	FrameIdentifier uint32
	PlayerCarIndex  uint8
}

type CarMotionData struct {
	WorldPositionX     float32
	WorldPositionY     float32
	WorldPositionZ     float32
	WorldVelocityX     float32
	WorldVelocityY     float32
	WorldVelocityZ     float32
	WorldForwardDirX   int16
	WorldForwardDirY   int16
	WorldForwardDirZ   int16
	WorldRightDirX     int16
	WorldRightDirY     int16
	WorldRightDirZ     int16
	GForceLateral      float32
	GForceLongitudinal float32
	GForceVertical     float32
	Yaw                float32
	Pitch              float32
	Roll               float32
}

type PacketMotionData struct {
	Header PacketHeader
	Cars   [NumCars]CarMotionData

	// player car only
	SuspensionPosition     [4]float32
	SuspensionVelocity     [4]float32
	SuspensionAcceleration [4]float32
	WheelSpeed             [4]float32
	WheelSlip              [4]float32
	LocalVelocityX         float32
	LocalVelocityY         float32
	LocalVelocityZ         float32
	AngularVelocityX       float32
	AngularVelocityY       float32
	AngularVelocityZ       float32
	AngularAccelerationX   float32
	AngularAccelerationY   float32
	AngularAccelerationZ   float32
	FrontWheelsAngle       float32
}

type CarSetupData struct {
	FrontWing             uint8
	RearWing              uint8
	OnThrottle            uint8
	OffThrottle           uint8
	FrontCamber           float32
	RearCamber            float32
	FrontToe              float32
	RearToe               float32
	FrontSuspension       uint8
	RearSuspension        uint8
	FrontAntiRollBar      uint8
	RearAntiRollBar       uint8
	FrontSuspensionHeight uint8
	RearSuspensionHeight  uint8
	BrakePressure         uint8
	BrakeBias             uint8
	FrontTyrePressure     float32
	RearTyrePressure      float32
	Ballast               uint8
	FuelLoad              float32
}

type PacketCarSetupData struct {
	Header PacketHeader
	Cars   [NumCars]CarSetupData
}

type CarTelemetryData struct {
	Speed                   uint16 // unit: km/h
	Throttle                uint8  // 0..100
	Steer                   int8   // -100..100
	Brake                   uint8  // 0..100
	Clutch                  uint8  // 0..100
	Gear                    int8   // -1 = reverse, 0 = neutral
	EngineRPM               uint16
	DRS                     uint8
	RevLightsPercent        uint8
	BrakesTemperature       [4]uint16 // unit: celsius, order RL RR FL FR
	TyresSurfaceTemperature [4]uint16
	TyresInnerTemperature   [4]uint16
	EngineTemperature       uint16
	TyresPressure           [4]float32
}

type PacketCarTelemetryData struct {
	Header       PacketHeader
	Cars         [NumCars]CarTelemetryData
	ButtonStatus uint32
}

type CarStatusData struct {
	TractionControl         uint8
	AntiLockBrakes          uint8
	FuelMix                 uint8
	FrontBrakeBias          uint8
	PitLimiterStatus        uint8
	FuelInTank              float32
	FuelCapacity            float32
	MaxRPM                  uint16
	IdleRPM                 uint16
	MaxGears                uint8
	DRSAllowed              uint8
	TyresWear               [4]uint8
	TyreCompound            uint8
	TyresDamage             [4]uint8 // unit: percent, order RL RR FL FR
	FrontLeftWingDamage     uint8
	FrontRightWingDamage    uint8
	RearWingDamage          uint8
	EngineDamage            uint8
	GearBoxDamage           uint8
	ExhaustDamage           uint8
	VehicleFiaFlags         int8
	ErsStoreEnergy          float32
	ErsDeployMode           uint8
	ErsHarvestedThisLapMGUK float32
	ErsHarvestedThisLapMGUH float32
	ErsDeployedThisLap      float32
}

type PacketCarStatusData struct {
	Header PacketHeader
	Cars   [NumCars]CarStatusData
}
