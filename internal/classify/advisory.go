package classify

import "time"

// Advisory identifies one of the fixed seasonal birding tips.
type Advisory int

const (
	AdvisoryMay Advisory = iota
	AdvisoryWinter
	AdvisorySpring
	AdvisorySummer
	AdvisoryFall
)

var advisoryText = map[Advisory]string{
	AdvisoryMay: "Congratulations, it's May, the best month for birding! To further enhance your chances, " +
		"it is preferable to get started as close to dawn as possible.",
	AdvisoryWinter: "Happy weird duck season! It would be best to get outside sometime between midday and sunset, " +
		"since the air takes a few hours to heat up from the sunlight. This is the ideal time to hone your " +
		"bird-listening skills. Birdsong tends to carry through winter air more efficiently than summer air, " +
		"and more owls tend to call during the winter. If the weather isn't agreeable, it is the season to put " +
		"feeders out and birdwatch from the comfort of a heated room. If you decide to brave the weather, keep in " +
		"mind that birds are less deterred by temperature than they are by food scarcity. They will most likely " +
		"be found near food sources such as conifer stands, open water and field edges, as well as in mixed " +
		"species flocks. It is also generally easier to spot birds in deciduous trees and in the snow during this season.",
	AdvisorySpring: "It is preferable to get started as close to dawn as possible. Enjoy the wonderful weather " +
		"as your fine-feathered friends definitely are enjoying it too!",
	AdvisorySummer: "Summer is a wonderful time to go birdwatching. There is a higher likelihood of spotting more " +
		"varieties of songbirds than you are used to seeing. To avoid peak summer heat and maximize the number " +
		"of species you may see, try getting outside earlier in the morning.",
	AdvisoryFall: "Midday is the best time to spot birds out in the fall. It is also likely that you may spot " +
		"out-of-the-ordinary species during the fall migration season. It is easier to hear birds further away, " +
		"but keep in mind that recognizing them may be complicated by duller non-breeding plumage. If applicable, " +
		"wear a reflective vest as it may be hunting season where you live.",
}

func (a Advisory) String() string {
	switch a {
	case AdvisoryMay:
		return "may"
	case AdvisoryWinter:
		return "winter"
	case AdvisorySpring:
		return "spring"
	case AdvisorySummer:
		return "summer"
	case AdvisoryFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Text returns the advisory shown to the user.
func (a Advisory) Text() string {
	return advisoryText[a]
}

// SeasonalAdvisory picks the advisory for a local calendar month. The branches
// are evaluated in order and the first match wins, so May is checked before the
// broader spring range.
func SeasonalAdvisory(month time.Month) Advisory {
	switch {
	case month == time.May:
		return AdvisoryMay
	case month <= time.February || month == time.December:
		return AdvisoryWinter
	case month <= time.June:
		return AdvisorySpring
	case month <= time.September:
		return AdvisorySummer
	default:
		return AdvisoryFall
	}
}
