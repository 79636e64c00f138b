package domain

import "time"

// Snapshot is a recorded load order of one instance profile
type Snapshot struct {
	ID          string           `json:"id"`
	InstanceDir string           `json:"instance_dir"`
	Profile     string           `json:"profile"`
	Label       string           `json:"label,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Entries     []LoadOrderEntry `json:"entries,omitempty"`
}

// ChangeKind describes how a mod differs between two load orders
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeEnabled  ChangeKind = "enabled"
	ChangeDisabled ChangeKind = "disabled"
	ChangeMoved    ChangeKind = "moved"
)

// LoadOrderChange is one difference reported by DiffLoadOrder
type LoadOrderChange struct {
	Name string     `json:"name"`
	Kind ChangeKind `json:"kind"`
	From int        `json:"from"` // Position in the earlier order, -1 when added
	To   int        `json:"to"`   // Position in the later order, -1 when removed
}

// DiffLoadOrder compares two load orders by mod name. Removed mods come
// first in earlier order, then additions and changes in later order. A mod
// that was both toggled and moved is reported as toggled. Duplicate names use
// their last occurrence.
func DiffLoadOrder(before, after []LoadOrderEntry) []LoadOrderChange {
	beforePos := positions(before)
	afterPos := positions(after)

	var changes []LoadOrderChange
	for i, e := range before {
		if beforePos[e.Name] != i {
			continue
		}
		if _, ok := afterPos[e.Name]; !ok {
			changes = append(changes, LoadOrderChange{Name: e.Name, Kind: ChangeRemoved, From: i, To: -1})
		}
	}

	// Relative order of mods present in both lists
	beforeRank := rank(before, beforePos, afterPos)
	afterRank := rank(after, afterPos, beforePos)

	for i, e := range after {
		if afterPos[e.Name] != i {
			continue
		}
		from, ok := beforePos[e.Name]
		switch {
		case !ok:
			changes = append(changes, LoadOrderChange{Name: e.Name, Kind: ChangeAdded, From: -1, To: i})
		case before[from].Enabled != e.Enabled:
			kind := ChangeDisabled
			if e.Enabled {
				kind = ChangeEnabled
			}
			changes = append(changes, LoadOrderChange{Name: e.Name, Kind: kind, From: from, To: i})
		case beforeRank[e.Name] != afterRank[e.Name]:
			changes = append(changes, LoadOrderChange{Name: e.Name, Kind: ChangeMoved, From: from, To: i})
		}
	}
	return changes
}

func positions(entries []LoadOrderEntry) map[string]int {
	pos := make(map[string]int, len(entries))
	for i, e := range entries {
		pos[e.Name] = i
	}
	return pos
}

// rank numbers the mods of entries that also appear in other, so that adding
// or removing unrelated mods does not count as a move
func rank(entries []LoadOrderEntry, pos, other map[string]int) map[string]int {
	ranks := make(map[string]int, len(entries))
	for i, e := range entries {
		if pos[e.Name] != i {
			continue
		}
		if _, ok := other[e.Name]; ok {
			ranks[e.Name] = len(ranks)
		}
	}
	return ranks
}
