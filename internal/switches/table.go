package switches

// Entry describes one switch: the names it answers to, how far it may be
// abbreviated, whether it takes a value, and what it does to a record R.
type Entry[R any] struct {
	Names  []string // first name is canonical; the rest are spellings tried in order
	MinLen int
	Arity  int // number of value tokens consumed, 0 or 1

	// Independent effects don't depend on the input colour space and are
	// applied to the record in the trial pass as well.
	Independent bool

	// Banner marks the debug switches whose first use prints the version line.
	Banner bool

	Apply func(rec *R, value string) error
}

// Name returns the canonical switch name.
func (e *Entry[R]) Name() string { return e.Names[0] }

// Table is an ordered list of entries. Lookup is first-match-wins, so an
// entry must not be shadowed by an earlier one with a shorter minimum.
type Table[R any] []Entry[R]

// Lookup finds the first entry that token (without its hyphen) abbreviates.
func (t Table[R]) Lookup(m Matcher, token string) (*Entry[R], bool) {
	for i := range t {
		for _, name := range t[i].Names {
			if m.Match(token, name, t[i].MinLen) {
				return &t[i], true
			}
		}
	}
	return nil, false
}
