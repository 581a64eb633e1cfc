package classify

// Temperature is a coarse temperature band used to pick a display glyph.
type Temperature int

const (
	Freezing Temperature = iota
	Cold
	Mild
	Warm
	Hot
)

func (t Temperature) String() string {
	switch t {
	case Freezing:
		return "freezing"
	case Cold:
		return "cold"
	case Mild:
		return "mild"
	case Warm:
		return "warm"
	case Hot:
		return "hot"
	default:
		return "unknown"
	}
}

// Glyph returns the emoji shown next to the condition description.
func (t Temperature) Glyph() string {
	switch t {
	case Freezing:
		return "❄️"
	case Cold:
		return "☁️"
	case Mild:
		return "⛅"
	case Warm:
		return "🌤️"
	default:
		return "🔥"
	}
}

// TemperatureCategory maps degrees Celsius to a band. Bands are half-open with
// an inclusive lower bound: <0, [0,10), [10,20), [20,30), >=30.
func TemperatureCategory(tempC float64) Temperature {
	switch {
	case tempC < 0:
		return Freezing
	case tempC < 10:
		return Cold
	case tempC < 20:
		return Mild
	case tempC < 30:
		return Warm
	default:
		return Hot
	}
}
