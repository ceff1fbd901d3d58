package processing

import (
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
)

// SnapshotProcessor multiplexes the four packet kinds into a coherent view
// of the tracked car. Motion, status and setup packets arrive less often
// than telemetry, so their payloads are cached per car index and merged
// into a Snapshot whenever a telemetry packet comes in.
type SnapshotProcessor struct {
	motionByIdx map[int]model.CarMotionData
	statusByIdx map[int]model.CarStatusData
	setupByIdx  map[int]model.CarSetupData

	trackedIdx int
	hasTracked bool
	lastFuel   float64
	maxRPM     int
}

type SnapshotProcessorOption func(sp *SnapshotProcessor)

func WithMaxRPM(maxRPM int) SnapshotProcessorOption {
	return func(sp *SnapshotProcessor) {
		sp.maxRPM = maxRPM
	}
}

func NewSnapshotProcessor(opts ...SnapshotProcessorOption) *SnapshotProcessor {
	sp := &SnapshotProcessor{
		motionByIdx: make(map[int]model.CarMotionData),
		statusByIdx: make(map[int]model.CarStatusData),
		setupByIdx:  make(map[int]model.CarSetupData),
		maxRPM:      model.DefaultMaxRPM,
	}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

// TrackedIndex returns the car index currently displayed and whether one
// has been established yet. Only telemetry packets set it.
func (sp *SnapshotProcessor) TrackedIndex() (int, bool) {
	return sp.trackedIdx, sp.hasTracked
}

// Process ingests one event. A Snapshot is returned for telemetry packets
// only; the other kinds update the caches for every car they carry and
// yield nil. Caching all cars keeps the ordering safe when such packets
// arrive before the first telemetry packet established a tracked index.
func (sp *SnapshotProcessor) Process(ev model.Event) *model.Snapshot {
	switch ev.Kind {
	case model.KindTelemetry:
		return sp.processTelemetry(ev.Telemetry)
	case model.KindMotion:
		if ev.Motion != nil {
			for i := range ev.Motion.Cars {
				sp.motionByIdx[i] = ev.Motion.Cars[i]
			}
		}
	case model.KindStatus:
		if ev.Status != nil {
			for i := range ev.Status.Cars {
				sp.statusByIdx[i] = ev.Status.Cars[i]
			}
		}
	case model.KindSetup:
		if ev.Setup != nil {
			for i := range ev.Setup.Cars {
				sp.setupByIdx[i] = ev.Setup.Cars[i]
			}
		}
	}
	return nil
}

func (sp *SnapshotProcessor) processTelemetry(
	pkt *model.PacketCarTelemetryData,
) *model.Snapshot {
	if pkt == nil {
		return nil
	}
	idx := int(pkt.Header.PlayerCarIndex)
	if idx < 0 || idx >= model.NumCars {
		return nil
	}
	sp.trackedIdx = idx
	sp.hasTracked = true

	car := pkt.Cars[idx]
	snap := &model.Snapshot{
		Speed:    int(car.Speed),
		RPM:      int(car.EngineRPM),
		MaxRPM:   sp.maxRPM,
		Gear:     int(car.Gear),
		Throttle: int(car.Throttle),
		Brake:    int(car.Brake),
		Fuel:     sp.lastFuel,
	}
	// surface temps come from the telemetry packet itself, never a cache
	for i, t := range car.TyresSurfaceTemperature {
		snap.TireTemps[i] = int(t)
	}
	if motion, ok := sp.motionByIdx[idx]; ok {
		snap.GForce = float64(motion.GForceLateral)
	}
	if status, ok := sp.statusByIdx[idx]; ok {
		for i, w := range status.TyresDamage {
			snap.TireWear[i] = int(w)
		}
	}
	if setup, ok := sp.setupByIdx[idx]; ok {
		snap.Fuel = float64(setup.FuelLoad)
		sp.lastFuel = snap.Fuel
	}
	return snap
}
