package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalAdvisory_AllMonths(t *testing.T) {
	want := map[time.Month]Advisory{
		time.January:   AdvisoryWinter,
		time.February:  AdvisoryWinter,
		time.March:     AdvisorySpring,
		time.April:     AdvisorySpring,
		time.May:       AdvisoryMay,
		time.June:      AdvisorySpring,
		time.July:      AdvisorySummer,
		time.August:    AdvisorySummer,
		time.September: AdvisorySummer,
		time.October:   AdvisoryFall,
		time.November:  AdvisoryFall,
		time.December:  AdvisoryWinter,
	}
	for month := time.January; month <= time.December; month++ {
		got := SeasonalAdvisory(month)
		assert.Equal(t, want[month], got, "SeasonalAdvisory(%s)", month)
		assert.NotEmpty(t, got.Text(), "advisory text for %s", month)
	}
}

// May sits inside the spring range and must still get its own advisory.
func TestSeasonalAdvisory_MayTakesPrecedence(t *testing.T) {
	for year := 2000; year < 2030; year++ {
		ts := time.Date(year, time.May, 31, 23, 59, 59, 0, time.FixedZone("x", -9*3600))
		assert.Equal(t, AdvisoryMay, SeasonalAdvisory(ts.Month()))
	}
}

func TestAdvisory_TextsAreDistinct(t *testing.T) {
	seen := make(map[string]Advisory)
	for _, a := range []Advisory{AdvisoryMay, AdvisoryWinter, AdvisorySpring, AdvisorySummer, AdvisoryFall} {
		text := a.Text()
		prev, dup := seen[text]
		assert.False(t, dup, "%s shares text with %s", a, prev)
		seen[text] = a
	}
}
