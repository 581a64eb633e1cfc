package present

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/kjstillabower/ornithologist/internal/classify"
	"github.com/kjstillabower/ornithologist/internal/models"
)

// Plain formats a weather payload without styling.
func Plain(w models.WeatherData) string {
	return fmt.Sprintf(
		"Weather in %s: %s %s\n"+
			"> Temperature: %.1f°C\n"+
			"> Humidity: %.1f%%\n"+
			"> Pressure: %.1f hPa\n"+
			"> Wind Speed: %.1f m/s",
		w.Location,
		w.Conditions,
		classify.TemperatureCategory(w.Temperature).Glyph(),
		w.Temperature,
		w.Humidity,
		w.Pressure,
		w.WindSpeed,
	)
}

// Style returns the color applied to a weather block for the given condition.
// Unknown conditions are left unstyled and return nil.
func Style(c classify.Condition) *color.Color {
	switch c {
	case classify.Clear:
		return color.New(color.FgHiYellow)
	case classify.Cloudy:
		return color.New(color.FgHiBlue)
	case classify.Obscured:
		return color.New(color.Faint)
	case classify.Precipitating:
		return color.New(color.FgHiCyan)
	default:
		return nil
	}
}

// Render returns the weather block with a single style chosen from the
// condition description. Whether escape codes are emitted follows color.NoColor.
func Render(w models.WeatherData) string {
	text := Plain(w)
	style := Style(classify.ConditionCategory(w.Conditions))
	if style == nil {
		return text
	}
	return style.Sprint(text)
}
