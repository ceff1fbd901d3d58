package display

// Tier buckets a gauge value by severity. All threshold branching of the
// dashboard goes through Classify so the boundaries live in one place.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierCritical
)

// Classify returns the tier for value given inclusive lower bounds for the
// warning and critical buckets.
func Classify(value, warnAt, critAt int) Tier {
	switch {
	case value >= critAt:
		return TierCritical
	case value >= warnAt:
		return TierWarning
	default:
		return TierNormal
	}
}

// Palette maps tiers to colors. Gauges keep their historical colors, so the
// mapping is per gauge rather than global.
type Palette struct {
	Normal   Color
	Warning  Color
	Critical Color
}

func (p Palette) Color(t Tier) Color {
	switch t {
	case TierWarning:
		return p.Warning
	case TierCritical:
		return p.Critical
	default:
		return p.Normal
	}
}

var (
	rpmPalette  = Palette{Normal: ColorGreen, Warning: ColorRed, Critical: ColorMagenta}
	tempPalette = Palette{Normal: ColorGreen, Warning: ColorYellow, Critical: ColorRed}
	wearPalette = Palette{Normal: ColorGreen, Warning: ColorYellow, Critical: ColorRed}
)

// tier thresholds (inclusive lower bounds)
const (
	rpmWarnAt  = 10000
	rpmCritAt  = 12000
	tempWarnAt = 151 // i.e. normal up to and including 150
	tempCritAt = 251
	wearWarnAt = 51 // i.e. normal up to and including 50
	wearCritAt = 76
)
