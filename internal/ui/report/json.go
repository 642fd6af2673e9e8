package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/refmap/internal/core/domain"
)

// jsonReport is the machine-readable shape of an extraction report.
type jsonReport struct {
	Revision jsonRevision           `json:"revision"`
	Commands map[string][]jsonMatch `json:"commands"`
	Events   map[string][]jsonMatch `json:"events"`
	Types    map[string][]jsonMatch `json:"types"`
	Total    int                    `json:"total"`
}

type jsonRevision struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Commit string `json:"commit"`
}

type jsonMatch struct {
	Path   string `json:"path"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// WriteJSON writes the report as indented JSON. The category maps are always
// present, even when empty, so consumers can index them unconditionally.
func WriteJSON(w io.Writer, refs *domain.ReferenceMap, rev domain.Revision) error {
	doc := jsonReport{
		Revision: jsonRevision{Owner: rev.Owner, Repo: rev.Repo, Commit: rev.Commit},
		Commands: toJSONMatches(refs.Commands),
		Events:   toJSONMatches(refs.Events),
		Types:    toJSONMatches(refs.Types),
		Total:    refs.Total(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSONMatches(entries map[string][]domain.Match) map[string][]jsonMatch {
	converted := make(map[string][]jsonMatch, len(entries))
	for key, matches := range entries {
		list := make([]jsonMatch, 0, len(matches))
		for _, match := range matches {
			list = append(list, jsonMatch{
				Path:   match.Path,
				Text:   match.Text,
				Offset: match.Offset,
				Length: match.Length,
			})
		}
		converted[key] = list
	}
	return converted
}
