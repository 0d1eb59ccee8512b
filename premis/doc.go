// Package premis models the PREMIS v3 preservation metadata records found
// in meemoo SIPs: objects, agents, and events, together with the
// identifiers that cross-link them.
//
// Records are decoded by local element name, so any namespace prefix bound
// to the PREMIS namespace is accepted. Event link roles are decoded into
// closed vocabularies during parsing, so a record using an unknown role
// literal fails at the XML boundary rather than halfway through a
// transformation.
package premis
