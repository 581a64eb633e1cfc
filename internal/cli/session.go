package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kjstillabower/ornithologist/internal/classify"
	"github.com/kjstillabower/ornithologist/internal/observability"
	"github.com/kjstillabower/ornithologist/internal/present"
	"github.com/kjstillabower/ornithologist/internal/service"
)

const (
	cityPrompt    = "Please enter the name of the city you are currently in:"
	countryPrompt = "Please enter the country code you are currently in (e.g., US for United States):"
	keyPrompt     = "Please enter your OpenWeatherMap API key. If you do not have one, fear not! " +
		"You can still get advice tailored to your current season. Just type \"no\" in the field below."
	againPrompt = "Would you like to check another city? (yes/no)"

	// disableLookups is matched exactly, case included.
	disableLookups = "no"
)

// Lookuper performs one weather lookup.
type Lookuper interface {
	Lookup(ctx context.Context, city, countryCode string) (service.Report, error)
}

// Options configure a Session.
type Options struct {
	// Continuous enables the "another city?" loop.
	Continuous bool
	// DefaultAPIKey replaces a blank answer to the key prompt.
	DefaultAPIKey string
	// Clock is read once when the session starts. Defaults to time.Now.
	Clock func() time.Time
	// Connect builds the lookup path for the key the user entered.
	Connect func(apiKey string) (Lookuper, error)
	Logger  *zap.Logger
}

// Session drives one interactive run: prompts, lookups, advisory and farewell.
type Session struct {
	prompter *Prompter
	out      io.Writer
	errOut   io.Writer
	opts     Options
}

func NewSession(in io.Reader, out, errOut io.Writer, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Session{
		prompter: NewPrompter(in, out),
		out:      out,
		errOut:   errOut,
		opts:     opts,
	}
}

// Run executes the session. Lookup failures are reported on the error stream
// and never end the session; only input failures (ErrInput) are returned.
func (s *Session) Run(ctx context.Context) error {
	now := s.opts.Clock()
	fmt.Fprintln(s.out, present.Welcome())

	city, country, err := s.askLocation()
	if err != nil {
		return err
	}
	apiKey, err := s.prompter.PromptLine(keyPrompt)
	if err != nil {
		return err
	}

	advisory := classify.SeasonalAdvisory(now.Month())
	s.opts.Logger.Debug("seasonal advisory", zap.Stringer("advisory", advisory), zap.Time("clock", now))
	fmt.Fprintln(s.out, advisory.Text())

	if apiKey == disableLookups {
		observability.LookupsTotal.WithLabelValues("skipped").Inc()
		s.opts.Logger.Debug("weather lookup disabled by user")
		s.farewell()
		return nil
	}
	if apiKey == "" {
		apiKey = s.opts.DefaultAPIKey
	}

	lookuper, err := s.opts.Connect(apiKey)
	if err != nil {
		s.reportError(err)
		s.farewell()
		return nil
	}

	for {
		s.lookup(ctx, lookuper, city, country)

		if !s.opts.Continuous || ctx.Err() != nil {
			break
		}
		answer, err := s.prompter.PromptLine(againPrompt)
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "yes") {
			break
		}
		city, country, err = s.askLocation()
		if err != nil {
			return err
		}
	}

	s.farewell()
	return nil
}

func (s *Session) askLocation() (string, string, error) {
	city, err := s.prompter.PromptLine(cityPrompt)
	if err != nil {
		return "", "", err
	}
	country, err := s.prompter.PromptLine(countryPrompt)
	if err != nil {
		return "", "", err
	}
	return city, country, nil
}

func (s *Session) lookup(ctx context.Context, lookuper Lookuper, city, country string) {
	report, err := lookuper.Lookup(ctx, city, country)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, report.Text)
}

func (s *Session) reportError(err error) {
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, present.Farewell())
}
