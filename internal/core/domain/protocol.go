// Package domain contains the core value types of the cross-reference engine.
package domain

// Version identifies the protocol description revision.
type Version struct {
	Major string
	Minor string
}

// Protocol is a parsed protocol description: an ordered sequence of domains,
// each grouping the commands, events and types of one protocol area.
// Instances are externally supplied and treated as immutable.
type Protocol struct {
	Version Version
	Domains []Domain
}

// Domain is a named grouping of related commands, events and types.
// The name is PascalCase-like (e.g. "Network").
type Domain struct {
	Name     string
	Commands []Command
	Events   []Event
	Types    []Type
}

// Command is a protocol method callable by a client. Its name is camelCase
// (e.g. "enable"); identity is the (domain, name) pair.
type Command struct {
	Name string
}

// Event is a protocol notification emitted by the implementation, named like
// commands.
type Event struct {
	Name string
}

// Type is a protocol data type. Its identifier follows the same naming
// convention as commands and events.
type Type struct {
	ID string
}
