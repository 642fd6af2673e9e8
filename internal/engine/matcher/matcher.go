// Package matcher locates protocol identifiers inside pinned source files.
package matcher

import (
	"context"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/refmap/internal/engine/snapshot"
)

// memoSize bounds the retained extraction results. Watch mode re-extracts on
// every edit of the protocol description, and edits mostly toggle between a
// handful of states.
const memoSize = 16

// Matcher cross-references protocol descriptions against the source files of
// one bound repository. Snapshot content is write-once, so scan results are
// deterministic within a session and assembled reference maps are memoized
// by protocol digest.
type Matcher struct {
	store   *snapshot.Store
	binding domain.Binding
	memo    *lru.Cache[uint64, *domain.ReferenceMap]
}

// New creates a Matcher reading through the given snapshot store.
func New(store *snapshot.Store, binding domain.Binding) *Matcher {
	// Size is constant and positive, so construction cannot fail.
	memo, _ := lru.New[uint64, *domain.ReferenceMap](memoSize)

	return &Matcher{
		store:   store,
		binding: binding,
		memo:    memo,
	}
}

// Extract returns the reference map of proto against the bound source files.
// The snapshot is ensured first; any fetch failure aborts the extraction
// with no partial result. Commands and events are scanned in the handler
// file, types in the types file. Entities without occurrences are absent
// from the result.
func (m *Matcher) Extract(ctx context.Context, proto *domain.Protocol) (*domain.ReferenceMap, error) {
	if err := m.store.EnsureAll(ctx, m.binding.SourceFiles()...); err != nil {
		return nil, err
	}

	handler, err := m.store.File(m.binding.HandlerFile)
	if err != nil {
		return nil, err
	}
	types, err := m.store.File(m.binding.TypesFile)
	if err != nil {
		return nil, err
	}

	key := protocolDigest(proto)
	if refs, ok := m.memo.Get(key); ok {
		return refs, nil
	}

	refs := domain.NewReferenceMap()
	for _, d := range proto.Domains {
		for _, command := range d.Commands {
			collect(refs.Commands, domain.QualifiedName(d.Name, command.Name),
				handler, m.binding.HandlerFile, domain.CommandCandidates(d.Name, command.Name))
		}
		for _, event := range d.Events {
			collect(refs.Events, domain.QualifiedName(d.Name, event.Name),
				handler, m.binding.HandlerFile, domain.EventCandidates(d.Name, event.Name))
		}
		for _, typ := range d.Types {
			collect(refs.Types, domain.QualifiedName(d.Name, typ.ID),
				types, m.binding.TypesFile, domain.TypeCandidates(d.Name, typ.ID))
		}
	}

	m.memo.Add(key, refs)

	return refs, nil
}

// RevisionDescription resolves the bound branch if needed and returns the
// revision every reported match belongs to.
func (m *Matcher) RevisionDescription(ctx context.Context) (domain.Revision, error) {
	return m.store.Resolve(ctx)
}

// collect scans content for the candidate spellings of one entity and files
// the matches under key. Entities with no occurrences stay absent.
func collect(category map[string][]domain.Match, key, content, path string, candidates []string) {
	matches := scan(content, path, candidates)
	if len(matches) == 0 {
		return
	}
	category[key] = matches
}

// scan returns every occurrence of any candidate inside content, in scan
// order. Offsets are byte offsets into the fetched file text.
func scan(content, path string, candidates []string) []domain.Match {
	re := compileCandidates(candidates)

	var matches []domain.Match
	for _, loc := range re.FindAllStringIndex(content, -1) {
		matches = append(matches, domain.Match{
			Path:   path,
			Text:   content[loc[0]:loc[1]],
			Offset: loc[0],
			Length: loc[1] - loc[0],
		})
	}

	return matches
}

// compileCandidates builds one case-sensitive alternation matching any of
// the literal candidates.
func compileCandidates(candidates []string) *regexp.Regexp {
	patterns := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		patterns = append(patterns, wordBounded(candidate))
	}

	return regexp.MustCompile("(?:" + strings.Join(patterns, "|") + ")")
}

// wordBounded quotes candidate and anchors it with \b only on the sides that
// begin or end with a word character. Quoted wire names begin and end with a
// double quote, where \b would invert its meaning and reject valid matches.
func wordBounded(candidate string) string {
	pattern := regexp.QuoteMeta(candidate)
	if isWordByte(candidate[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(candidate[len(candidate)-1]) {
		pattern += `\b`
	}

	return pattern
}

// isWordByte reports membership in the regexp \w class, which is ASCII only.
func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('A' <= b && b <= 'Z') ||
		('a' <= b && b <= 'z')
}

// protocolDigest fingerprints the candidate-determining parts of a protocol
// description. Two descriptions with the same digest produce the same scan.
func protocolDigest(proto *domain.Protocol) uint64 {
	hasher := xxhash.New()

	for _, d := range proto.Domains {
		_, _ = hasher.WriteString(d.Name)
		_, _ = hasher.Write([]byte{0})

		for _, command := range d.Commands {
			_, _ = hasher.WriteString(command.Name)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator

		for _, event := range d.Events {
			_, _ = hasher.WriteString(event.Name)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})

		for _, typ := range d.Types {
			_, _ = hasher.WriteString(typ.ID)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})
	}

	return hasher.Sum64()
}
