package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	InitI18NBundle()

	en := NewLocalizer("en")
	assert.Equal(t, "Total Cases", Localize(en, "TotalCases", nil))
	assert.Equal(t, "Daily New Deaths", Localize(en, "BarChartTitle", map[string]interface{}{"Metric": "Deaths"}))

	tw := NewLocalizer("zh-TW")
	assert.Equal(t, "累計死亡", Localize(tw, "TotalDeaths", nil))

	fallback := NewLocalizer("fr")
	assert.Equal(t, "Total Deaths", Localize(fallback, "TotalDeaths", nil))

	assert.Equal(t, "NoSuchMessage", Localize(en, "NoSuchMessage", nil))
}
