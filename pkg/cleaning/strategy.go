// Package cleaning implements a pluggable data-cleaning pipeline. An ordered
// list of strategies is applied to a dataset; each strategy declares the
// options it requires, and a validation gate checks eligibility before any
// strategy is allowed to mutate the data. Option values come from one of two
// sources: a schema's cleaning settings block, or a flat map supplied by the
// caller at invocation time.
package cleaning

import (
	"fmt"
	"strings"

	"github.com/datasweep/datasweep/pkg/dataset"
)

// Strategy is a single pluggable transformation applied to a dataset as one
// pipeline step. Clean mutates the dataset bound to the run in place.
type Strategy interface {
	// Name returns the registry name of the strategy.
	Name() string

	// RequiredOptions returns the option names that must resolve to a value
	// before Clean may run.
	RequiredOptions() []string

	// Clean executes the transformation against run.Dataset.
	Clean(run *Run) error
}

// EligibilityChecker is an optional override of the default eligibility
// check. Implementations should normally include the default check (every
// required option present) unless intentionally replacing it; see
// defaultCanUse.
type EligibilityChecker interface {
	// CanUse reports whether the strategy can run against this run, and a
	// human-actionable reason when it cannot.
	CanUse(run *Run) (bool, string)
}

// Documented is an optional interface for strategy self-description,
// consumed by Info and never by the pipeline.
type Documented interface {
	Purpose() string
	OptionDocs() []OptionDoc
}

// OptionDoc documents one strategy option.
type OptionDoc struct {
	Name        string
	Description string
	Example     string
}

// Run binds one strategy to one dataset and one resolved option mapping for
// the duration of a single pipeline step. It is created immediately before
// validation and discarded after Clean returns.
type Run struct {
	Dataset *dataset.Dataset
	Options Options
}

// Validate is the validation gate: it runs the strategy's eligibility check
// and returns an EligibilityError carrying the reason verbatim when the
// strategy cannot run. It is stateless and re-entrant.
func Validate(s Strategy, run *Run) error {
	ok, reason := canUse(s, run)
	if !ok {
		return &EligibilityError{Strategy: s.Name(), Reason: reason}
	}
	return nil
}

func canUse(s Strategy, run *Run) (bool, string) {
	if ec, ok := s.(EligibilityChecker); ok {
		return ec.CanUse(run)
	}
	return defaultCanUse(s, run)
}

// defaultCanUse checks that every required option resolved to a value. It
// reports the first missing option with its documentation, when available,
// so the message tells the user exactly what to supply.
func defaultCanUse(s Strategy, run *Run) (bool, string) {
	for _, name := range s.RequiredOptions() {
		if !run.Options.Has(name) {
			return false, missingOptionReason(s, name)
		}
	}
	return true, ""
}

func missingOptionReason(s Strategy, name string) string {
	reason := fmt.Sprintf("missing required option %q", name)
	if doc, ok := lookupOptionDoc(s, name); ok {
		if doc.Description != "" {
			reason += ": " + doc.Description
		}
		if doc.Example != "" {
			reason += fmt.Sprintf(" (e.g. %s)", doc.Example)
		}
	}
	return reason
}

func lookupOptionDoc(s Strategy, name string) (OptionDoc, bool) {
	d, ok := s.(Documented)
	if !ok {
		return OptionDoc{}, false
	}
	for _, doc := range d.OptionDocs() {
		if doc.Name == name {
			return doc, true
		}
	}
	return OptionDoc{}, false
}

// optionExample returns the documented example for an option, if any.
func optionExample(s Strategy, name string) string {
	doc, ok := lookupOptionDoc(s, name)
	if !ok {
		return ""
	}
	return doc.Example
}

// Info returns a human-readable description of a strategy: its purpose and
// its required options with per-option documentation. It exists for
// discovery only; the pipeline never consults it.
func Info(s Strategy) string {
	var sb strings.Builder
	sb.WriteString(s.Name())
	if d, ok := s.(Documented); ok && d.Purpose() != "" {
		sb.WriteString(": ")
		sb.WriteString(d.Purpose())
	}
	sb.WriteString("\n")

	required := s.RequiredOptions()
	if len(required) == 0 {
		sb.WriteString("\nNo required options.\n")
		return sb.String()
	}

	sb.WriteString("\nRequired options:\n")
	for _, name := range required {
		sb.WriteString("  " + name)
		if doc, ok := lookupOptionDoc(s, name); ok {
			if doc.Description != "" {
				sb.WriteString(": " + doc.Description)
			}
			if doc.Example != "" {
				sb.WriteString(fmt.Sprintf(" (e.g. %s)", doc.Example))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
