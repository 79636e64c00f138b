package domain

// LoadOrderEntry is one line of a profile's mod list
type LoadOrderEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// EntryNames returns the mod names of entries, keeping their order
func EntryNames(entries []LoadOrderEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// EnabledNames returns the names of enabled entries, keeping their order
func EnabledNames(entries []LoadOrderEntry) []string {
	var names []string
	for _, e := range entries {
		if e.Enabled {
			names = append(names, e.Name)
		}
	}
	return names
}
