package present

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjstillabower/ornithologist/internal/classify"
	"github.com/kjstillabower/ornithologist/internal/models"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = saved })
}

func austin() models.WeatherData {
	return models.WeatherData{
		Location:    "Austin",
		Conditions:  "clear sky",
		Temperature: 22.3,
		Humidity:    55.0,
		Pressure:    1013.2,
		WindSpeed:   3.4,
	}
}

func TestPlain_Layout(t *testing.T) {
	got := Plain(austin())
	want := "Weather in Austin: clear sky 🌤️\n" +
		"> Temperature: 22.3°C\n" +
		"> Humidity: 55.0%\n" +
		"> Pressure: 1013.2 hPa\n" +
		"> Wind Speed: 3.4 m/s"
	assert.Equal(t, want, got)
}

func TestPlain_RoundsToOneDecimal(t *testing.T) {
	w := models.WeatherData{Location: "Oslo", Conditions: "snow", Temperature: -3.26, Humidity: 80, Pressure: 999.95, WindSpeed: 0.04}
	got := Plain(w)
	assert.Contains(t, got, "> Temperature: -3.3°C")
	assert.Contains(t, got, "> Humidity: 80.0%")
	assert.Contains(t, got, "> Pressure: 1000.0 hPa")
	assert.Contains(t, got, "> Wind Speed: 0.0 m/s")
	assert.Contains(t, got, classify.Freezing.Glyph())
}

func TestRender_ClearSkyIsStyledAsClear(t *testing.T) {
	withColor(t, true)

	got := Render(austin())

	for _, s := range []string{"Austin", "clear sky", classify.Warm.Glyph(), "22.3", "55.0", "1013.2", "3.4"} {
		assert.Contains(t, got, s)
	}
	assert.True(t, strings.HasPrefix(got, "\x1b[93m"), "want bright yellow prefix, got %q", got)
}

func TestRender_StylePerCondition(t *testing.T) {
	withColor(t, true)

	tests := []struct {
		conditions string
		prefix     string
	}{
		{"clear sky", "\x1b[93m"},
		{"broken clouds", "\x1b[94m"},
		{"fog", "\x1b[2m"},
		{"thunderstorm", "\x1b[96m"},
	}
	for _, tt := range tests {
		t.Run(tt.conditions, func(t *testing.T) {
			w := austin()
			w.Conditions = tt.conditions
			got := Render(w)
			assert.True(t, strings.HasPrefix(got, tt.prefix), "Render() = %q, want prefix %q", got, tt.prefix)
		})
	}
}

func TestRender_UnknownConditionIsUnstyled(t *testing.T) {
	withColor(t, true)

	w := austin()
	w.Conditions = "light rain"
	assert.Equal(t, Plain(w), Render(w))
	assert.Nil(t, Style(classify.Unknown))
}

func TestRender_NoColorLeavesTextPlain(t *testing.T) {
	withColor(t, false)
	assert.Equal(t, Plain(austin()), Render(austin()))
}

func TestBanners(t *testing.T) {
	withColor(t, false)
	require.Contains(t, Welcome(), "personal ornithologist")
	require.Contains(t, Farewell(), "Thank you")
	assert.Equal(t, "city?", Prompt("city?"))
}
