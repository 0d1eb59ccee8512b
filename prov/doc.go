// Package prov defines the normalized provenance graph emitted for a SIP:
// one intellectual entity, its digital and carrier representations, and
// the package's preservation events with resolved, role-typed links.
//
// Nodes carry their own identity; cross-links between nodes are plain
// references. The one exception is an event result that resolved to an
// object no record persists, which is embedded in place as an ephemeral
// object.
package prov
