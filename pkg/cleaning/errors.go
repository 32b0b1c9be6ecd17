package cleaning

import (
	"errors"
	"fmt"
	"strings"
)

// Exported sentinel errors. Use errors.Is to check for them.
var (
	// ErrNoSettings is returned when a schema-driven pipeline runs against a
	// schema that has no cleaning settings block at all. The fix is to add
	// the whole block, not a single key.
	ErrNoSettings = errors.New("schema has no cleaning settings block")

	// ErrUnknownOption is returned when a strategy reads an option it never
	// declared and that was never supplied.
	ErrUnknownOption = errors.New("unknown option")
)

// MissingFieldError reports a cleaning settings block that exists but lacks
// one option a strategy requires.
type MissingFieldError struct {
	Strategy string
	Field    string
	Example  string
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("cleaning settings are missing %q, required by the %s strategy", e.Field, e.Strategy)
	if e.Example != "" {
		msg += fmt.Sprintf("; set it in the schema's cleaning block, e.g. %s", e.Example)
	}
	return msg
}

// MissingOptionsError enumerates every required option the caller did not
// supply, so all of them can be fixed in one pass.
type MissingOptionsError struct {
	Options []string
}

func (e *MissingOptionsError) Error() string {
	return "missing options:\n" + strings.Join(e.Options, "\n")
}

// EligibilityError is raised by the validation gate when a strategy reports
// it cannot run. Reason is the strategy's own message, carried verbatim.
type EligibilityError struct {
	Strategy string
	Reason   string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("cannot run %s: %s", e.Strategy, e.Reason)
}
