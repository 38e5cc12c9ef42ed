package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconForCode(t *testing.T) {
	tests := []struct {
		code int
		want Icon
	}{
		{0, IconClear},
		{1, IconPartlyCloudy},
		{2, IconCloudy},
		{3, IconOvercast},
		{45, IconFog},
		{48, IconFog},
		{51, IconDrizzleLight},
		{53, IconDrizzle},
		{55, IconDrizzleDense},
		{61, IconRainLight},
		{63, IconRain},
		{65, IconRainHeavy},
		{71, IconSnowLight},
		{73, IconSnow},
		{75, IconSnowHeavy},
		{95, IconThunderstorm},
		{96, IconThunderstormHail},
		{99, IconThunderstormHeavyHail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IconForCode(tt.code), "code %d", tt.code)
	}
}

func TestIconForCode_UnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 4, 56, 77, 80, 100, 999} {
		assert.Equal(t, IconUnknown, IconForCode(code), "code %d", code)
	}
	assert.Equal(t, Icon("clear"), IconForCode(0))
	assert.Equal(t, Icon("unknown"), IconForCode(999))
}

func TestIcon_CSSClass(t *testing.T) {
	assert.Equal(t, "wi-day-sunny", IconClear.CSSClass())
	assert.Equal(t, "wi-fog", IconForCode(48).CSSClass())
	assert.Equal(t, "wi-storm-showers", IconThunderstormHail.CSSClass())
	assert.Equal(t, "wi-na", IconUnknown.CSSClass())
	assert.Equal(t, "wi-na", Icon("").CSSClass())
}

func TestDescribeCode(t *testing.T) {
	assert.Equal(t, "Clear sky", DescribeCode(0))
	assert.Equal(t, "Thunderstorm with heavy hail", DescribeCode(99))
	assert.Equal(t, "Snow grains", DescribeCode(77))
	assert.Equal(t, "Unknown", DescribeCode(42))
}
