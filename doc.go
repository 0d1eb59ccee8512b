// Package transformator turns unpacked meemoo SIPs into normalized
// provenance graphs.
//
// A SIP is located and its manifests and preservation records parsed by
// the mets and premis packages. The resolv package resolves the
// identifier references between those records and classifies every
// linking role; the result is the output graph of the prov package.
// This package ties the pipeline together for callers that do not care
// about the intermediate representations.
package transformator
