package jars

// Role names one of the three path lists
type Role string

const (
	RoleIn      Role = "in"
	RoleOut     Role = "out"
	RoleLibrary Role = "library"
)

// Entry is one path with its optional filter
type Entry struct {
	Path   PathSpec
	Filter *Filter
}

// List is an ordered, append-only sequence of entries
type List struct {
	entries []Entry
}

// Add appends a path and its filter (nil for none)
func (l *List) Add(path PathSpec, filter *Filter) {
	l.entries = append(l.entries, Entry{Path: path, Filter: filter})
}

// Len returns the number of entries
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a snapshot of the entries
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Paths returns a live view over the entry paths
func (l *List) Paths() PathView {
	return PathView{list: l}
}

// Filters returns a live view over the entry filters
func (l *List) Filters() FilterView {
	return FilterView{list: l}
}

// PathView reads paths from a List as it grows
type PathView struct {
	list *List
}

func (v PathView) Len() int          { return v.list.Len() }
func (v PathView) At(i int) PathSpec { return v.list.entries[i].Path }
func (v PathView) Slice() []PathSpec {
	out := make([]PathSpec, 0, v.list.Len())
	for _, e := range v.list.entries {
		out = append(out, e.Path)
	}
	return out
}

// Strings returns the paths as plain strings
func (v PathView) Strings() []string {
	out := make([]string, 0, v.list.Len())
	for _, e := range v.list.entries {
		out = append(out, e.Path.String())
	}
	return out
}

// FilterView reads filters from a List as it grows
type FilterView struct {
	list *List
}

func (v FilterView) Len() int         { return v.list.Len() }
func (v FilterView) At(i int) *Filter { return v.list.entries[i].Filter }
func (v FilterView) Slice() []*Filter {
	out := make([]*Filter, 0, v.list.Len())
	for _, e := range v.list.entries {
		out = append(out, e.Filter)
	}
	return out
}

// Set holds the three role-scoped lists
type Set struct {
	In      List
	Out     List
	Library List
}

// For returns the list for a role, or nil for an unknown role
func (s *Set) For(role Role) *List {
	switch role {
	case RoleIn:
		return &s.In
	case RoleOut:
		return &s.Out
	case RoleLibrary:
		return &s.Library
	default:
		return nil
	}
}
