// Package merge implements field-level conflict resolution between an
// existing stored record and an incoming observation of the same
// identity.
//
// This package is pure: no I/O, no clock, no store access. Records
// carry their own provenance (source + scraped_at) and Merge arbitrates
// per field. The default rule is "later scraped_at wins, ties keep the
// existing value"; per (kind, field) rules registered on a Policy take
// precedence over the default for that field only.
package merge

import (
	"fmt"
	"time"
)

// Record is a normalized view of one entity row. Values holds every
// field as its canonical string form; an absent key or an empty string
// both mean the field was not observed.
type Record struct {
	// Kind is the entity kind name ("hikes", "reports", "schedule").
	Kind string

	// Key is the identity key of the record within its kind.
	Key string

	// Source labels the producer of the observation.
	Source string

	// ScrapedAt is when the observation was captured.
	ScrapedAt time.Time

	// Values maps field name to canonical string value.
	Values map[string]string
}

// Value is one field of a record together with the provenance of the
// record it came from. Rules decide between two of these.
type Value struct {
	Data      string
	Source    string
	ScrapedAt time.Time
}

// Merge resolves existing and incoming into one record.
//
// Both records must share kind and identity key. The result carries
// the later of the two scraped_at timestamps and the source of the
// record that supplied it (ties keep the existing provenance). Fields
// empty in the incoming record never erase a present existing value;
// fields empty in the existing record are filled by the incoming value
// regardless of timestamps - absence is not information in either
// direction. No value is ever fabricated: every field of the result is
// present in at least one of the inputs.
//
// Merge is idempotent: Merge(p, Merge(p, e, i), i) == Merge(p, e, i).
func Merge(p *Policy, existing, incoming Record) (Record, error) {
	if existing.Kind != incoming.Kind {
		return Record{}, fmt.Errorf(
			"cannot merge across kinds: %q vs %q",
			existing.Kind, incoming.Kind)
	}
	if existing.Key != incoming.Key {
		return Record{}, fmt.Errorf(
			"cannot merge across identities: %q vs %q",
			existing.Key, incoming.Key)
	}

	res := Record{
		Kind:      existing.Kind,
		Key:       existing.Key,
		Source:    existing.Source,
		ScrapedAt: existing.ScrapedAt,
		Values:    make(map[string]string),
	}
	// Record-level provenance follows the newer observation.
	// A tie keeps the existing provenance.
	if incoming.ScrapedAt.After(existing.ScrapedAt) {
		res.Source = incoming.Source
		res.ScrapedAt = incoming.ScrapedAt
	}

	for _, field := range fieldNames(existing, incoming) {
		ev := existing.Values[field]
		iv := incoming.Values[field]

		var winner string
		switch {
		case iv == "":
			winner = ev
		case ev == "":
			winner = iv
		default:
			rule := p.rule(existing.Kind, field)
			choice := rule(
				Value{Data: ev, Source: existing.Source,
					ScrapedAt: existing.ScrapedAt},
				Value{Data: iv, Source: incoming.Source,
					ScrapedAt: incoming.ScrapedAt},
			)
			if choice == TakeIncoming {
				winner = iv
			} else {
				winner = ev
			}
		}

		if winner != "" {
			res.Values[field] = winner
		}
	}

	return res, nil
}

// fieldNames returns the union of field names in deterministic order.
func fieldNames(a, b Record) []string {
	seen := make(map[string]bool, len(a.Values)+len(b.Values))
	var res []string
	for f := range a.Values {
		if !seen[f] {
			seen[f] = true
			res = append(res, f)
		}
	}
	for f := range b.Values {
		if !seen[f] {
			seen[f] = true
			res = append(res, f)
		}
	}
	return res
}
