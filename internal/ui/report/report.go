// Package report renders extraction results for terminal and script
// consumption: a styled human-readable view and a JSON document.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/refmap/internal/ui/output"
	"go.trai.ch/refmap/internal/ui/style"
)

// Renderer writes styled cross-reference reports. Styling degrades to plain
// text when the color profile does not support it (NO_COLOR, pipes).
type Renderer struct {
	out *termenv.Output
}

// New creates a Renderer writing to w with the shared color profile logic.
func New(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Render writes the located references grouped by category, one entity per
// bullet with its matches beneath, followed by a summary and the revision
// attribution. Categories without any located entity are omitted entirely.
func (r *Renderer) Render(refs *domain.ReferenceMap, rev domain.Revision) error {
	var b strings.Builder

	sections := []struct {
		title   string
		entries map[string][]domain.Match
	}{
		{"Commands", refs.Commands},
		{"Events", refs.Events},
		{"Types", refs.Types},
	}

	total := 0
	for _, section := range sections {
		if len(section.entries) == 0 {
			continue
		}

		b.WriteString(r.heading(section.title) + "\n")

		keys := make([]string, 0, len(section.entries))
		for key := range section.entries {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			matches := section.entries[key]
			total += len(matches)

			count := r.muted(fmt.Sprintf("(%d)", len(matches)))
			b.WriteString("  " + r.accent(style.Dot) + " " + r.bold(key) + " " + count + "\n")

			for _, match := range matches {
				location := fmt.Sprintf("%s %s %d %s", match.Path, style.Bullet, match.Offset, style.Bullet)
				b.WriteString("      " + r.muted(location) + " " + match.Text + "\n")
			}
		}

		b.WriteString("\n")
	}

	if total == 0 {
		b.WriteString(r.warn(style.Warning+" no references found") + "\n")
	} else {
		b.WriteString(r.good(fmt.Sprintf("%s %d reference(s) found", style.Check, total)) + "\n")
	}
	b.WriteString(r.muted(Attribution(rev)) + "\n")

	_, err := r.out.WriteString(b.String())
	return err
}

// RenderRevision writes only the attribution line.
func (r *Renderer) RenderRevision(rev domain.Revision) error {
	_, err := r.out.WriteString(r.muted(Attribution(rev)) + "\n")
	return err
}

// Attribution formats the provenance line shown under every report.
func Attribution(rev domain.Revision) string {
	return fmt.Sprintf("data is from commit `%s` of `%s`", rev.Commit, rev.Slug())
}

func (r *Renderer) heading(s string) string {
	return r.out.String(s).Bold().Foreground(termenv.RGBColor(string(style.Iris))).String()
}

func (r *Renderer) accent(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Iris))).String()
}

func (r *Renderer) bold(s string) string {
	return r.out.String(s).Bold().String()
}

func (r *Renderer) muted(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).String()
}

func (r *Renderer) good(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Green))).String()
}

func (r *Renderer) warn(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Yellow))).String()
}
