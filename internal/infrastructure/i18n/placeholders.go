package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pbadmin/internal/domain"
)

// printf flags, width, precision, argument indexes and '*'.
const verbModifiers = "+-# 0123456789.*[]"

// Placeholders returns the printf verbs of template in order, e.g. ["%s"].
// "%%" is a literal percent sign and not a placeholder.
func Placeholders(template string) []string {
	var verbs []string
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		j := i + 1
		if j < len(template) && template[j] == '%' {
			i = j
			continue
		}
		for j < len(template) && strings.IndexByte(verbModifiers, template[j]) >= 0 {
			j++
		}
		if j >= len(template) {
			break
		}
		if isVerb(template[j]) {
			verbs = append(verbs, template[i:j+1])
		}
		i = j
	}
	return verbs
}

func isVerb(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// checkPlaceholders rejects verbs whose argument is not the next value in
// order: explicit indexes like %[1]s and '*' widths.
func checkPlaceholders(key string, verbs []string) error {
	for _, v := range verbs {
		if strings.ContainsAny(v, "[*") {
			return fmt.Errorf("%q: %s: %w", key, v, domain.ErrUnsupportedPlaceholder)
		}
	}
	return nil
}

// Format checks args against the placeholders of template and renders it
// with the number formatting of tag.
func Format(tag language.Tag, key, template string, args ...any) (string, error) {
	verbs := Placeholders(template)
	if err := checkPlaceholders(key, verbs); err != nil {
		return "", err
	}
	if len(args) != len(verbs) {
		return "", &domain.FormatMismatchError{Key: key, Want: len(verbs), Got: len(args)}
	}
	for i, v := range verbs {
		if !argFits(v[len(v)-1], args[i]) {
			return "", &domain.FormatMismatchError{Key: key, Want: len(verbs), Got: i + 1, Verb: v}
		}
	}
	return message.NewPrinter(tag).Sprintf(template, args...), nil
}

// argFits reports whether fmt renders arg under verb without a %!verb error.
func argFits(verb byte, arg any) bool {
	switch verb {
	case 'v', 'T':
		return true
	case 'd', 'b', 'o', 'O', 'c', 'U':
		return isInteger(arg)
	case 's', 'q':
		return isText(arg)
	case 'x', 'X':
		return isInteger(arg) || isFloat(arg) || isText(arg)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return isFloat(arg)
	case 't':
		_, ok := arg.(bool)
		return ok
	}
	return false
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func isText(v any) bool {
	switch v.(type) {
	case string, []byte, fmt.Stringer, error:
		return true
	}
	return false
}
