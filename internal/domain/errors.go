package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrMissingKey     = errors.New("message key not found")
	ErrResolution     = errors.New("message composition cannot be resolved")
	ErrFormatMismatch = errors.New("arguments do not match message placeholders")
	ErrDuplicateKey   = errors.New("message key defined twice")
	ErrEmptyTemplate  = errors.New("message template is empty")
	ErrNotLogMessage  = errors.New("message key is not a log message")
	ErrGameRequired   = errors.New("game id is required")

	ErrUnsupportedPlaceholder = errors.New("message template uses an unsupported placeholder")
)

// MissingKeyError reports a lookup of a key that no table defines.
type MissingKeyError struct {
	Locale string
	Key    string
}

func (e *MissingKeyError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("%v: %q", ErrMissingKey, e.Key)
	}
	return fmt.Sprintf("%v: %q (locale %s)", ErrMissingKey, e.Key, e.Locale)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// ResolutionError reports a composition marker that points to a key not
// defined earlier in the same table.
type ResolutionError struct {
	Key    string
	Ref    string
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%v: %q: %s", ErrResolution, e.Key, e.Reason)
	}
	return fmt.Sprintf("%v: %q references %q: %s", ErrResolution, e.Key, e.Ref, e.Reason)
}

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// FormatMismatchError reports arguments that do not fit a template's slots.
// Verb is set when the count matches but an argument has the wrong kind.
type FormatMismatchError struct {
	Key  string
	Want int
	Got  int
	Verb string
}

func (e *FormatMismatchError) Error() string {
	if e.Verb != "" {
		return fmt.Sprintf("%v: %q: argument %d does not fit %s", ErrFormatMismatch, e.Key, e.Got, e.Verb)
	}
	return fmt.Sprintf("%v: %q wants %d argument(s), got %d", ErrFormatMismatch, e.Key, e.Want, e.Got)
}

func (e *FormatMismatchError) Is(target error) bool { return target == ErrFormatMismatch }

var codes = []struct {
	err  error
	code string
}{
	{ErrMissingKey, "missing_key"},
	{ErrResolution, "resolution"},
	{ErrFormatMismatch, "format_mismatch"},
	{ErrDuplicateKey, "duplicate_key"},
	{ErrEmptyTemplate, "empty_template"},
	{ErrNotLogMessage, "not_log_message"},
	{ErrGameRequired, "game_required"},
	{ErrUnsupportedPlaceholder, "unsupported_placeholder"},
}

// Code returns a stable identifier for a domain error, or "" when err is
// not one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
