package domain

// Match is one located occurrence of a candidate identifier inside a fetched
// source file. Offset is the byte offset of Text within the file content.
type Match struct {
	Path   string
	Text   string
	Offset int
	Length int
}

// ReferenceMap groups located references by entity category. Keys are
// canonical "<Domain>.<entity>" names; match order is scan order. Entities
// with zero occurrences are absent from their category map, so callers must
// treat a missing key and an empty slice as the same signal.
type ReferenceMap struct {
	Commands map[string][]Match
	Events   map[string][]Match
	Types    map[string][]Match
}

// NewReferenceMap returns an empty ReferenceMap with all categories allocated.
func NewReferenceMap() *ReferenceMap {
	return &ReferenceMap{
		Commands: make(map[string][]Match),
		Events:   make(map[string][]Match),
		Types:    make(map[string][]Match),
	}
}

// Total returns the number of matches across all categories.
func (m *ReferenceMap) Total() int {
	var n int
	for _, matches := range m.Commands {
		n += len(matches)
	}
	for _, matches := range m.Events {
		n += len(matches)
	}
	for _, matches := range m.Types {
		n += len(matches)
	}
	return n
}
