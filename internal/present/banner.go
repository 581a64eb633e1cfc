package present

import "github.com/fatih/color"

const (
	welcomeText = "Welcome to your personal ornithologist! You will get advice tailored to your current " +
		"weather and time of year to spot the most birds on your next expedition."
	farewellText = "Thank you for consulting with me! May the force be with you on your upcoming " +
		"birdwatching expedition!!"
)

var (
	bannerStyle   = color.New(color.FgHiYellow)
	promptStyle   = color.New(color.FgHiGreen)
	farewellStyle = color.New(color.FgHiBlue)
)

func Welcome() string { return bannerStyle.Sprint(welcomeText) }

func Farewell() string { return farewellStyle.Sprint(farewellText) }

// Prompt styles a question shown before reading a line of input.
func Prompt(msg string) string { return promptStyle.Sprint(msg) }
