package i18n

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Definition is one [[message]] entry of an active.<locale>.toml file.
type Definition struct {
	ID      string `toml:"id"`
	Section string `toml:"section"`
	Text    string `toml:"text"`
}

type definitionFile struct {
	Locale   string       `toml:"locale"`
	Messages []Definition `toml:"message"`
}

// ParseDefinitions decodes a definition file. Entries keep their file order,
// which is the order compositions are resolved in.
func ParseDefinitions(data []byte) (string, []Definition, error) {
	var file definitionFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return "", nil, err
	}
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return "", nil, fmt.Errorf("locale is required")
	}
	return locale, file.Messages, nil
}

// localeFromFileName extracts "de" from "active.de.toml".
func localeFromFileName(name string) string {
	base := path.Base(name)
	base = strings.TrimPrefix(base, "active.")
	return strings.TrimSuffix(base, ".toml")
}

// LoadTableFS reads and builds the table stored in name.
func LoadTableFS(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}
	locale, defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	if want := localeFromFileName(name); locale != want {
		return nil, fmt.Errorf("i18n: %s: locale %q must match file name locale %q", name, locale, want)
	}
	table, err := Build(locale, defs)
	if err != nil {
		return nil, fmt.Errorf("i18n: build %s: %w", name, err)
	}
	return table, nil
}
