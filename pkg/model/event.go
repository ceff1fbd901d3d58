package model

// PacketKind is the packet id carried in the header. Only the four kinds
// below are recognized, everything else is discarded by the source.
type PacketKind uint8

const (
	KindMotion    PacketKind = 0
	KindSetup     PacketKind = 5
	KindTelemetry PacketKind = 6
	KindStatus    PacketKind = 7
)

// Event is a decoded telemetry packet. Exactly one of the payload pointers
// is set, matching Kind.
type Event struct {
	Kind      PacketKind
	Motion    *PacketMotionData
	Setup     *PacketCarSetupData
	Telemetry *PacketCarTelemetryData
	Status    *PacketCarStatusData
}
