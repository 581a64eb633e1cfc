package classify

// Condition groups provider condition descriptions into display categories.
type Condition int

const (
	Unknown Condition = iota
	Clear
	Cloudy
	Obscured
	Precipitating
)

func (c Condition) String() string {
	switch c {
	case Clear:
		return "clear"
	case Cloudy:
		return "cloudy"
	case Obscured:
		return "obscured"
	case Precipitating:
		return "precipitating"
	default:
		return "unknown"
	}
}

// conditionSets is matched in order. Descriptions must match exactly: "light rain"
// is not "rain".
var conditionSets = []struct {
	category     Condition
	descriptions map[string]struct{}
}{
	{Clear, set("clear sky")},
	{Cloudy, set("few clouds", "scattered clouds", "broken clouds")},
	{Obscured, set("overcast clouds", "mist", "haze", "smoke", "sand", "dust", "fog", "squalls")},
	{Precipitating, set("shower rain", "rain", "thunderstorm", "snow")},
}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// ConditionCategory returns the category for a provider description. The match
// is case-sensitive; anything unlisted, including "", is Unknown.
func ConditionCategory(description string) Condition {
	for _, s := range conditionSets {
		if _, ok := s.descriptions[description]; ok {
			return s.category
		}
	}
	return Unknown
}
