package merge

// Choice is a rule's verdict for one contested field.
type Choice int

const (
	// KeepExisting keeps the stored value.
	KeepExisting Choice = iota
	// TakeIncoming replaces the stored value with the incoming one.
	TakeIncoming
)

// Rule decides between two present, non-empty values of one field.
// Rules never see absent values: absence is handled before rules run.
type Rule func(existing, incoming Value) Choice

// Latest is the default rule: the value from the record with the later
// scraped_at wins. A tie keeps the existing value - the stored record
// is treated as not strictly older.
func Latest(existing, incoming Value) Choice {
	if incoming.ScrapedAt.After(existing.ScrapedAt) {
		return TakeIncoming
	}
	return KeepExisting
}

// PreferLonger keeps whichever value is longer regardless of
// timestamps. Used for prose fields where a fuller text beats a
// fresher truncation.
func PreferLonger(existing, incoming Value) Choice {
	if len(incoming.Data) > len(existing.Data) {
		return TakeIncoming
	}
	return KeepExisting
}

// Policy maps (kind, field) to an explicit resolution rule. Fields
// without an entry fall back to Latest. A Policy is configuration,
// built once at startup and read-only afterwards.
type Policy struct {
	rules map[string]Rule
}

// NewPolicy creates an empty Policy where every field resolves with
// the default Latest rule.
func NewPolicy() *Policy {
	return &Policy{rules: make(map[string]Rule)}
}

// Register installs an explicit rule for one field of one kind.
// It takes precedence over the default rule for that field only.
func (p *Policy) Register(kind, field string, r Rule) {
	p.rules[kind+"."+field] = r
}

func (p *Policy) rule(kind, field string) Rule {
	if r, ok := p.rules[kind+"."+field]; ok {
		return r
	}
	return Latest
}
