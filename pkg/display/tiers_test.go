package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_RPMBoundaries(t *testing.T) {
	tests := []struct {
		rpm  int
		want Tier
	}{
		{0, TierNormal},
		{9999, TierNormal},
		{10000, TierWarning},
		{11999, TierWarning},
		{12000, TierCritical},
		{15000, TierCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.rpm, rpmWarnAt, rpmCritAt),
			"rpm=%d", tt.rpm)
	}
}

func TestClassify_TempBoundaries(t *testing.T) {
	tests := []struct {
		temp int
		want Tier
	}{
		{150, TierNormal},
		{151, TierWarning},
		{250, TierWarning},
		{251, TierCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.temp, tempWarnAt, tempCritAt),
			"temp=%d", tt.temp)
	}
}

func TestClassify_WearBoundaries(t *testing.T) {
	tests := []struct {
		wear int
		want Tier
	}{
		{50, TierNormal},
		{51, TierWarning},
		{75, TierWarning},
		{76, TierCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.wear, wearWarnAt, wearCritAt),
			"wear=%d", tt.wear)
	}
}

func TestPalette_Color(t *testing.T) {
	p := Palette{Normal: ColorGreen, Warning: ColorYellow, Critical: ColorRed}
	assert.Equal(t, ColorGreen, p.Color(TierNormal))
	assert.Equal(t, ColorYellow, p.Color(TierWarning))
	assert.Equal(t, ColorRed, p.Color(TierCritical))
}
