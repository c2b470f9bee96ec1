package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"pbadmin/internal/domain"
	"pbadmin/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output ports.
var (
	_ output.T       = (*Translator)(nil)
	_ output.Catalog = (*Translator)(nil)
)

// Translator holds one Table per locale and picks the best one per call.
// Locale matching and per-key fallback to the default locale go through
// go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	tables          map[string]*Table
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator from the embedded active.*.toml files
// using the given default locale (e.g. "en").
func NewTranslator(defaultLocale string) (*Translator, error) {
	return NewTranslatorFS(localeFS, defaultLocale)
}

// NewTranslatorFS is NewTranslator for definition files stored at the root
// of fsys.
func NewTranslatorFS(fsys fs.FS, defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Printf("i18n: invalid default locale %q, using %s: %v", defaultLocale, language.English, err)
		tag = language.English
	}

	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob definitions: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("i18n: no active.*.toml files found")
	}
	slices.Sort(files)

	bundle := i18n.NewBundle(tag)
	t := &Translator{
		bundle:          bundle,
		tables:          make(map[string]*Table, len(files)),
		defaultLanguage: tag,
	}
	for _, file := range files {
		table, err := LoadTableFS(fsys, file)
		if err != nil {
			return nil, err
		}
		name := table.Locale().String()
		if _, dup := t.tables[name]; dup {
			return nil, fmt.Errorf("i18n: locale %s defined twice (%s)", name, file)
		}
		if err := bundle.AddMessages(table.Locale(), bundleMessages(table)...); err != nil {
			return nil, fmt.Errorf("i18n: register %s: %w", file, err)
		}
		t.tables[name] = table
	}

	if _, ok := t.tables[tag.String()]; !ok {
		return nil, fmt.Errorf("i18n: default locale %s has no active.%s.toml", tag, tag)
	}
	return t, nil
}

func bundleMessages(t *Table) []*i18n.Message {
	msgs := t.Messages()
	out := make([]*i18n.Message, len(msgs))
	for i, m := range msgs {
		out[i] = &i18n.Message{ID: m.Key, Other: m.Template}
	}
	return out
}

// DefaultLocale returns the locale every lookup falls back to.
func (t *Translator) DefaultLocale() language.Tag { return t.defaultLanguage }

// Locales returns the tags of all loaded tables, sorted.
func (t *Translator) Locales() []language.Tag {
	tags := make([]language.Tag, 0, len(t.tables))
	for _, table := range t.tables {
		tags = append(tags, table.Locale())
	}
	slices.SortFunc(tags, func(a, b language.Tag) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return tags
}

// Table returns the table loaded for exactly locale.
func (t *Translator) Table(locale string) (*Table, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, false
	}
	table, ok := t.tables[tag.String()]
	return table, ok
}

// TableFor returns the table that best matches locale, or the default
// locale's table when none does.
func (t *Translator) TableFor(locale string) *Table {
	if table, ok := t.Table(locale); ok {
		return table
	}
	def := t.tables[t.defaultLanguage.String()]
	if locale == "" {
		return def
	}
	tags := []language.Tag{t.defaultLanguage}
	for _, tag := range t.Locales() {
		if tag != t.defaultLanguage {
			tags = append(tags, tag)
		}
	}
	_, i, conf := language.NewMatcher(tags).Match(language.Make(locale))
	if conf == language.No {
		return def
	}
	return t.tables[tags[i].String()]
}

// lookup resolves key for locale, returning the table the template came
// from. An empty locale means the default locale.
func (t *Translator) lookup(locale, key string) (*Table, string, error) {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return nil, "", &domain.MissingKeyError{Locale: languages[0], Key: key}
		}
		return nil, "", fmt.Errorf("i18n: localize %q: %w", key, err)
	}
	table, ok := t.tables[tag.String()]
	if !ok {
		return nil, "", fmt.Errorf("i18n: no table for matched locale %s", tag)
	}
	return table, msg, nil
}

// Get returns the raw template for key in the best matching locale.
func (t *Translator) Get(locale, key string) (string, error) {
	_, msg, err := t.lookup(locale, key)
	return msg, err
}

// Format renders key with args. The number of args must match the
// template's placeholders.
func (t *Translator) Format(locale, key string, args ...any) (string, error) {
	table, msg, err := t.lookup(locale, key)
	if err != nil {
		return "", err
	}
	return Format(table.Locale(), key, msg, args...)
}

// Slots returns the number of substitution values key expects.
func (t *Translator) Slots(locale, key string) (int, error) {
	table, _, err := t.lookup(locale, key)
	if err != nil {
		return 0, err
	}
	return table.Slots(key)
}

// Section returns the section key belongs to.
func (t *Translator) Section(locale, key string) (string, error) {
	table, _, err := t.lookup(locale, key)
	if err != nil {
		return "", err
	}
	return table.SectionOf(key)
}

// T renders the message identified by key for the given locale.
// A missing key renders as the key itself; arguments that do not fit the
// template render the bare template.
func (t *Translator) T(locale, key string, args ...any) string {
	if key == "" {
		return ""
	}
	msg, err := t.Format(locale, key, args...)
	if err == nil {
		return msg
	}
	log.Printf("i18n: localize failed (key=%s, locale=%s): %v", key, locale, err)
	if errors.Is(err, domain.ErrFormatMismatch) {
		if tmpl, gerr := t.Get(locale, key); gerr == nil {
			return tmpl
		}
	}
	return key
}
