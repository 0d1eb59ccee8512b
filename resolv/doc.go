// Package resolv builds the cross-record identifier index of a SIP and
// transforms its preservation records into the normalized provenance
// graph.
//
// Resolution is fail fast: the first broken invariant aborts the
// transformation with an error whose cause is a ResolutionError. A SIP
// either transforms completely or not at all.
package resolv
