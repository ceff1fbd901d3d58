package model

// DefaultMaxRPM is the rev limit used for the RPM gauge. The 2018 protocol
// reports per-car limits in the status packet but the dashboard uses a
// fixed scale.
const DefaultMaxRPM = 15000

// TireLabels is the display order of the wheel arrays in every packet.
var TireLabels = [4]string{"RL", "RR", "FL", "FR"}

// Snapshot is the merged per-frame view of the tracked car. It is built
// fresh on every telemetry packet; fields without cached data keep their
// zero value except Fuel, which is sticky across frames.
type Snapshot struct {
	Speed     int // unit: km/h
	RPM       int
	MaxRPM    int
	Gear      int
	TireTemps [4]int // unit: celsius, surface temperature
	TireWear  [4]int // unit: percent
	Throttle  int    // 0..100
	Brake     int    // 0..100
	GForce    float64
	Fuel      float64
}
