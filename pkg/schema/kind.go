package schema

import (
	"fmt"
)

// Kind identifies one of the entity kinds the importer understands.
type Kind int

const (
	// KindUnknown is the zero value, never valid for import.
	KindUnknown Kind = iota
	// KindHikes is the trail metadata CSV.
	KindHikes
	// KindReports is the trip report CSV.
	KindReports
	// KindSchedule is the hiking schedule CSV.
	KindSchedule
)

var kindNames = map[Kind]string{
	KindHikes:    "hikes",
	KindReports:  "reports",
	KindSchedule: "schedule",
}

// String returns the CLI name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind converts a CLI name to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown entity kind: %q", s)
}
