// Package mets reads the METS manifests of an unpacked meemoo SIP: it
// locates the package root, extracts the SIP profile, and loads the
// preservation records the manifests point at.
package mets

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Profiles this loader understands.
var profiles = map[string]struct{}{
	"https://data.hetarchief.be/id/sip/2.1/basic":            {},
	"https://data.hetarchief.be/id/sip/2.1/bibliographic":    {},
	"https://data.hetarchief.be/id/sip/2.1/material-artwork": {},
	"https://data.hetarchief.be/id/sip/2.1/film":             {},
}

// Document is the part of a METS manifest this loader consumes: the SIP
// profile, the link to the PREMIS record of the described directory, and
// the links to the representation manifests.
//
// Representation manifests carry no profile of their own; Profile is only
// set on package manifests.
type Document struct {
	Profile            string
	PreservationRef    string
	RepresentationRefs []string
}

type metsXML struct {
	Profile    string         `xml:"OTHERCONTENTINFORMATIONTYPE,attr"`
	AmdSecs    []amdSecXML    `xml:"amdSec"`
	StructMaps []structMapXML `xml:"structMap"`
}

type amdSecXML struct {
	DigiprovMDs []digiprovXML `xml:"digiprovMD"`
}

type digiprovXML struct {
	MdRef mdRefXML `xml:"mdRef"`
}

type mdRefXML struct {
	LocType string `xml:"LOCTYPE,attr"`
	Href    string `xml:"href,attr"`
}

type structMapXML struct {
	Label string `xml:"LABEL,attr"`
	Type  string `xml:"TYPE,attr"`
	Div   divXML `xml:"div"`
}

type divXML struct {
	Label string    `xml:"LABEL,attr"`
	Divs  []divXML  `xml:"div"`
	Mptrs []mptrXML `xml:"mptr"`
}

type mptrXML struct {
	Href string `xml:"href,attr"`
}

// Parse reads one METS manifest. The preservation record link is the
// first URL mdRef of the administrative metadata; representation links
// come from the physical CSIP structural map.
func Parse(r io.Reader) (*Document, error) {
	var x metsXML
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, errors.Wrap(err, "could not decode METS document")
	}

	doc := &Document{Profile: x.Profile}
	if doc.Profile != "" {
		if _, ok := profiles[doc.Profile]; !ok {
			return nil, errors.Errorf("unsupported SIP profile %q", doc.Profile)
		}
	}

	for _, amd := range x.AmdSecs {
		for _, dp := range amd.DigiprovMDs {
			if doc.PreservationRef == "" && dp.MdRef.LocType == "URL" && dp.MdRef.Href != "" {
				doc.PreservationRef = dp.MdRef.Href
			}
		}
	}

	for _, sm := range x.StructMaps {
		if sm.Label != "CSIP" || sm.Type != "PHYSICAL" {
			continue
		}
		for _, div := range sm.Div.Divs {
			if !strings.HasPrefix(div.Label, "Representations") {
				continue
			}
			for _, mptr := range div.Mptrs {
				if mptr.Href != "" {
					doc.RepresentationRefs = append(doc.RepresentationRefs, mptr.Href)
				}
			}
		}
	}

	return doc, nil
}

// ParseFile reads the METS manifest at path.
func ParseFile(path string) (doc *Document, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open manifest at %s", path)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing manifest at %s", path)
		}
	}()

	doc, err = Parse(file)
	return doc, errors.Wrapf(err, "could not parse manifest at %s", path)
}
