package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"pbadmin/internal/domain"
	"pbadmin/internal/domain/entities"
)

// Composition marker: "${game_admin}" is replaced by the resolved text of
// game_admin, which must be defined earlier in the same table.
const (
	refOpen  = "${"
	refClose = "}"
)

type entry struct {
	template string
	section  string
	slots    int
}

// Table is the immutable key -> template mapping of one locale.
// It is safe for concurrent use.
type Table struct {
	locale   language.Tag
	messages map[string]entry
	order    []string
}

// Build constructs a table from ordered definitions.
func Build(locale string, defs []Definition) (*Table, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}

	t := &Table{
		locale:   tag,
		messages: make(map[string]entry, len(defs)),
		order:    make([]string, 0, len(defs)),
	}
	for i, d := range defs {
		key := strings.TrimSpace(d.ID)
		if key == "" {
			return nil, fmt.Errorf("definition #%d: id is required", i+1)
		}
		if _, dup := t.messages[key]; dup {
			return nil, fmt.Errorf("%q: %w", key, domain.ErrDuplicateKey)
		}
		text, err := t.resolve(key, d.Text)
		if err != nil {
			return nil, err
		}
		if text == "" {
			return nil, fmt.Errorf("%q: %w", key, domain.ErrEmptyTemplate)
		}
		verbs := Placeholders(text)
		if err := checkPlaceholders(key, verbs); err != nil {
			return nil, err
		}
		section := strings.TrimSpace(d.Section)
		if section == "" {
			section = domain.SectionUI
		}
		t.messages[key] = entry{
			template: text,
			section:  section,
			slots:    len(verbs),
		}
		t.order = append(t.order, key)
	}
	return t, nil
}

func (t *Table) resolve(key, text string) (string, error) {
	if !strings.Contains(text, refOpen) {
		return text, nil
	}
	var b strings.Builder
	rest := text
	for {
		i := strings.Index(rest, refOpen)
		if i < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:i])
		rest = rest[i+len(refOpen):]

		j := strings.Index(rest, refClose)
		if j < 0 {
			return "", &domain.ResolutionError{Key: key, Reason: "unterminated " + refOpen + " marker"}
		}
		ref := strings.TrimSpace(rest[:j])
		if ref == "" {
			return "", &domain.ResolutionError{Key: key, Reason: "empty reference"}
		}
		target, ok := t.messages[ref]
		if !ok {
			return "", &domain.ResolutionError{Key: key, Ref: ref, Reason: "not defined before this entry"}
		}
		b.WriteString(target.template)
		rest = rest[j+len(refClose):]
	}
}

// Locale returns the table's language tag.
func (t *Table) Locale() language.Tag { return t.locale }

// Len returns the number of messages.
func (t *Table) Len() int { return len(t.order) }

// Has reports whether key is defined.
func (t *Table) Has(key string) bool {
	_, ok := t.messages[key]
	return ok
}

// Get returns the template for key, or a *domain.MissingKeyError.
func (t *Table) Get(key string) (string, error) {
	e, ok := t.messages[key]
	if !ok {
		return "", t.missing(key)
	}
	return e.template, nil
}

// Slots returns the number of substitution values key expects.
func (t *Table) Slots(key string) (int, error) {
	e, ok := t.messages[key]
	if !ok {
		return 0, t.missing(key)
	}
	return e.slots, nil
}

// SectionOf returns the section key was defined in.
func (t *Table) SectionOf(key string) (string, error) {
	e, ok := t.messages[key]
	if !ok {
		return "", t.missing(key)
	}
	return e.section, nil
}

// Keys returns all keys in definition order.
func (t *Table) Keys() []string {
	return slices.Clone(t.order)
}

// Section returns the keys of one section in definition order.
func (t *Table) Section(section string) []string {
	var keys []string
	for _, k := range t.order {
		if t.messages[k].section == section {
			keys = append(keys, k)
		}
	}
	return keys
}

// Messages returns copies of all messages in definition order.
func (t *Table) Messages() []entities.Message {
	out := make([]entities.Message, len(t.order))
	for i, k := range t.order {
		e := t.messages[k]
		out[i] = entities.Message{
			Key:      k,
			Template: e.template,
			Locale:   t.locale.String(),
			Section:  e.section,
		}
	}
	return out
}

func (t *Table) missing(key string) error {
	return &domain.MissingKeyError{Locale: t.locale.String(), Key: key}
}
