package domain

import (
	"encoding/json"
	"strconv"
)

// SourceType tells where a mod's content came from
type SourceType int

const (
	SourceUnknown   SourceType = iota // No provenance recorded
	SourceNexusMods                   // Downloaded from NexusMods
)

func (t SourceType) String() string {
	switch t {
	case SourceNexusMods:
		return "nexus_mods"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the type by name
func (t SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a type name. Unknown names decode as SourceUnknown.
func (t *SourceType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case SourceNexusMods.String():
		*t = SourceNexusMods
	default:
		*t = SourceUnknown
	}
	return nil
}

// NexusID is an optional NexusMods identifier. Zero and negative values are
// never valid ids, so they collapse into the unset state.
type NexusID struct {
	value int64
	set   bool
}

// NewNexusID returns a set NexusID for positive v, otherwise an unset one
func NewNexusID(v int64) NexusID {
	if v <= 0 {
		return NexusID{}
	}
	return NexusID{value: v, set: true}
}

// ParseNexusID converts a metadata value. Empty strings are unset; anything
// that is not an integer is an error.
func ParseNexusID(s string) (NexusID, error) {
	if s == "" {
		return NexusID{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NexusID{}, err
	}
	return NewNexusID(v), nil
}

// Get returns the id and whether it is set
func (id NexusID) Get() (int64, bool) {
	return id.value, id.set
}

// IsSet returns true if the id holds a value
func (id NexusID) IsSet() bool {
	return id.set
}

func (id NexusID) String() string {
	if !id.set {
		return ""
	}
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes unset ids as null
func (id NexusID) MarshalJSON() ([]byte, error) {
	if !id.set {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes null or a number
func (id *NexusID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = NexusID{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*id = NewNexusID(v)
	return nil
}
