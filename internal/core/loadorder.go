package core

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// ModListFile is the per-profile load order file name
const ModListFile = "modlist.txt"

var modListLine = regexp.MustCompile(`^([+-])(.+)$`)

// ReadLoadOrder reads a profile's mod list and returns it from the first mod
// applied to the last. Mod Organizer stores the list highest priority first,
// so the file order is reversed. Lines that are not "+name" or "-name"
// (separators, comments, blanks) are skipped.
func ReadLoadOrder(profilesDir, profile string) ([]domain.LoadOrderEntry, error) {
	listPath := path.Join(profilesDir, profile, ModListFile)
	data, err := os.ReadFile(listPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", listPath, domain.ErrProfileMissing)
		}
		return nil, fmt.Errorf("reading %s: %w", listPath, err)
	}

	return ParseLoadOrder(string(data)), nil
}

// ParseLoadOrder parses mod list content, see ReadLoadOrder
func ParseLoadOrder(content string) []domain.LoadOrderEntry {
	entries := []domain.LoadOrderEntry{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := modListLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, domain.LoadOrderEntry{
			Name:    m[2],
			Enabled: m[1] == "+",
		})
	}
	slices.Reverse(entries)
	return entries
}

// FormatLoadOrder renders entries in mod list storage order. It is the
// inverse of ParseLoadOrder for well-formed content.
func FormatLoadOrder(entries []domain.LoadOrderEntry) string {
	var b strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Enabled {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(entries[i].Name)
		b.WriteByte('\n')
	}
	return b.String()
}
