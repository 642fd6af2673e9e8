package protocol

import "go.trai.ch/refmap/internal/core/domain"

// File mirrors the JSON protocol description document.
type File struct {
	Version VersionDTO  `json:"version"`
	Domains []DomainDTO `json:"domains"`
}

// VersionDTO is the protocol version pair.
type VersionDTO struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// DomainDTO is one protocol domain with its commands, events and types.
type DomainDTO struct {
	Domain   string       `json:"domain"`
	Commands []CommandDTO `json:"commands"`
	Events   []EventDTO   `json:"events"`
	Types    []TypeDTO    `json:"types"`
}

// CommandDTO is a single protocol command.
type CommandDTO struct {
	Name string `json:"name"`
}

// EventDTO is a single protocol event.
type EventDTO struct {
	Name string `json:"name"`
}

// TypeDTO is a single protocol type. Types carry an id instead of a
// name in the protocol description format.
type TypeDTO struct {
	ID string `json:"id"`
}

// toDomain converts the parsed file into the domain model.
func (f *File) toDomain() *domain.Protocol {
	p := &domain.Protocol{
		Version: domain.Version{Major: f.Version.Major, Minor: f.Version.Minor},
		Domains: make([]domain.Domain, 0, len(f.Domains)),
	}

	for _, d := range f.Domains {
		dom := domain.Domain{Name: d.Domain}
		for _, c := range d.Commands {
			dom.Commands = append(dom.Commands, domain.Command{Name: c.Name})
		}
		for _, e := range d.Events {
			dom.Events = append(dom.Events, domain.Event{Name: e.Name})
		}
		for _, t := range d.Types {
			dom.Types = append(dom.Types, domain.Type{ID: t.ID})
		}
		p.Domains = append(p.Domains, dom)
	}

	return p
}
