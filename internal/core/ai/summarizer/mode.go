package summarizer

import "fmt"

// SummaryType selects extraction-vs-generation style.
type SummaryType string

const (
	Extractive  SummaryType = "extractive"
	Abstractive SummaryType = "abstractive"
)

// Verbosity selects the target summary length.
type Verbosity string

const (
	Succinct Verbosity = "succinct"
	Verbose  Verbosity = "verbose"
)

// Mode is one of the four summarization modes. The enumeration is closed:
// anything outside it is rejected at construction time as a configuration
// error, never silently defaulted.
type Mode struct {
	Type      SummaryType
	Verbosity Verbosity
}

// ParseMode validates the two selector strings and returns the mode.
func ParseMode(summaryType, verbosity string) (Mode, error) {
	var m Mode

	switch SummaryType(summaryType) {
	case Extractive, Abstractive:
		m.Type = SummaryType(summaryType)
	default:
		return Mode{}, fmt.Errorf("invalid summarization type %q (want %q or %q)", summaryType, Extractive, Abstractive)
	}

	switch Verbosity(verbosity) {
	case Succinct, Verbose:
		m.Verbosity = Verbosity(verbosity)
	default:
		return Mode{}, fmt.Errorf("invalid verbosity %q (want %q or %q)", verbosity, Succinct, Verbose)
	}

	return m, nil
}

func (m Mode) String() string {
	return fmt.Sprintf("%s-%s", m.Type, m.Verbosity)
}
