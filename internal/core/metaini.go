package core

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Mod Organizer writes its ini files through QSettings: "=" is the only
// delimiter, keys may contain backslashes ("1\modid"), and ";" or "#" after a
// value are part of the value. Trailing backslashes never continue a line.
var iniOptions = ini.LoadOptions{
	KeyValueDelimiters:        "=",
	IgnoreInlineComment:       true,
	IgnoreContinuation:        true,
	UnescapeValueDoubleQuotes: true,
	SkipUnrecognizableLines:   false,
}

// iniFile is a read-only view over a parsed ini document
type iniFile struct {
	file *ini.File
}

// emptyINI returns a document without any section
func emptyINI() *iniFile {
	return &iniFile{file: ini.Empty(iniOptions)}
}

// loadINI parses the ini file at path. A missing file is reported with an
// error matching os.ErrNotExist.
func loadINI(path string) (*iniFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &iniFile{file: f}, nil
}

// loadOptionalINI behaves like loadINI but returns an empty document when the
// file does not exist.
func loadOptionalINI(path string) (*iniFile, error) {
	f, err := loadINI(path)
	if errors.Is(err, os.ErrNotExist) {
		return emptyINI(), nil
	}
	return f, err
}

// value returns the raw value of section/key, or "" when either is missing
func (f *iniFile) value(section, key string) string {
	sec, err := f.file.GetSection(section)
	if err != nil {
		return ""
	}
	if !sec.HasKey(key) {
		return ""
	}
	return sec.Key(key).String()
}

// has reports whether section/key is present
func (f *iniFile) has(section, key string) bool {
	sec, err := f.file.GetSection(section)
	if err != nil {
		return false
	}
	return sec.HasKey(key)
}
