// Package confcheck validates conference submission sheets and applies cleanups.
package confcheck

import (
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"go.uber.org/zap"
)

// Mode represents the reporting mode.
type Mode string

const (
	// ModeStrict reports errors and warnings.
	ModeStrict Mode = "strict"
	// ModeErrors reports errors only.
	ModeErrors Mode = "errors"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStrict, ModeErrors:
		return Mode(s), nil
	default:
		return "", &UsageError{Flag: "mode", Value: s, Allowed: []string{string(ModeStrict), string(ModeErrors)}}
	}
}

// Options configures validation behavior.
type Options struct {
	// Mode specifies the reporting mode (strict, errors).
	Mode Mode
	// Config is the rule data. If nil, rules.DefaultConfig is used.
	Config *rules.Config
	// Sheet restricts file validation to one sheet. Empty means every sheet.
	Sheet string
	// Encoding is the text encoding of csv input (utf-8, latin1, windows-1252).
	Encoding string
	// IncludeWarnings overrides the mode's warning policy when set.
	IncludeWarnings *bool
	// Logger receives debug and summary logs. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default validation options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStrict,
	}
}

// ShouldIncludeWarnings returns whether warnings are reported.
func (o Options) ShouldIncludeWarnings() bool {
	if o.IncludeWarnings != nil {
		return *o.IncludeWarnings
	}
	return o.Mode != ModeErrors
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) config() rules.Config {
	if o.Config != nil {
		return *o.Config
	}
	return rules.DefaultConfig()
}
