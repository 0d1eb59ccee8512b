package premis

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
)

// ObjectType discriminates the PREMIS object union.
type ObjectType int

// Object variants. Temporary marks placeholders for referenced objects
// that no record in the SIP describes; it never results from parsing.
const (
	Unknown ObjectType = iota
	IntellectualEntity
	Representation
	File
	Bitstream
	Temporary
)

func (t ObjectType) String() string {
	switch t {
	case IntellectualEntity:
		return "intellectualEntity"
	case Representation:
		return "representation"
	case File:
		return "file"
	case Bitstream:
		return "bitstream"
	case Temporary:
		return "temporary"
	}
	return "unknown"
}

// ParseObjectType parses an xsi:type attribute value such as
// "premis:file" into an object type. Unknown literals are an error.
func ParseObjectType(v string) (ObjectType, error) {
	local := v
	if i := strings.LastIndex(v, ":"); i >= 0 {
		local = v[i+1:]
	}

	for _, t := range []ObjectType{IntellectualEntity, Representation, File, Bitstream} {
		if strings.EqualFold(local, t.String()) {
			return t, nil
		}
	}
	return Unknown, errors.Errorf("unknown premis object type %q", v)
}

// Record is one parsed PREMIS document, either the package record of a
// SIP or the record of a single representation. Path is the record
// directory relative to the parent of the SIP root; the loader sets it,
// not the parser.
type Record struct {
	Path    string   `xml:"-"`
	Objects []Object `xml:"object"`
	Events  []Event  `xml:"event"`
	Agents  []Agent  `xml:"agent"`
}

// Entities returns the intellectual entity objects of the record.
func (rec *Record) Entities() []*Object { return rec.objectsOfType(IntellectualEntity) }

// Representations returns the representation objects of the record.
func (rec *Record) Representations() []*Object { return rec.objectsOfType(Representation) }

// Files returns the file objects of the record.
func (rec *Record) Files() []*Object { return rec.objectsOfType(File) }

func (rec *Record) objectsOfType(t ObjectType) []*Object {
	var objs []*Object
	for i := range rec.Objects {
		if rec.Objects[i].Type == t {
			objs = append(objs, &rec.Objects[i])
		}
	}
	return objs
}

// Object is one PREMIS object record, discriminated by Type.
type Object struct {
	Type                  ObjectType
	Identifiers           []Identifier
	OriginalName          string
	SignificantProperties []SignificantProperties
	Characteristics       []Characteristics
	Relationships         []Relationship
}

type objectXML struct {
	Identifiers           []Identifier            `xml:"objectIdentifier"`
	OriginalName          string                  `xml:"originalName"`
	SignificantProperties []SignificantProperties `xml:"significantProperties"`
	Characteristics       []Characteristics       `xml:"objectCharacteristics"`
	Relationships         []Relationship          `xml:"relationship"`
}

// UnmarshalXML decodes an object element, requiring a known xsi:type
// discriminant.
func (o *Object) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var typeAttr string
	for _, a := range start.Attr {
		if a.Name.Local == "type" {
			typeAttr = a.Value
			break
		}
	}

	t, err := ParseObjectType(typeAttr)
	if err != nil {
		return err
	}

	var x objectXML
	if err := d.DecodeElement(&x, &start); err != nil {
		return err
	}

	*o = Object{
		Type:                  t,
		Identifiers:           x.Identifiers,
		OriginalName:          x.OriginalName,
		SignificantProperties: x.SignificantProperties,
		Characteristics:       x.Characteristics,
		Relationships:         x.Relationships,
	}
	return nil
}

// NewTemporaryObject builds the placeholder used when an event references
// an identifier that no record describes. The placeholder carries exactly
// that identifier.
func NewTemporaryObject(id Identifier) *Object {
	return &Object{
		Type:        Temporary,
		Identifiers: []Identifier{id},
	}
}

// IsTemporary reports whether the object is a resolution placeholder
// rather than a parsed record.
func (o *Object) IsTemporary() bool {
	return o.Type == Temporary
}

// UUID returns the object's UUID identifier.
func (o *Object) UUID() (Identifier, bool) {
	return findIdentifier(o.Identifiers, TypeUUID)
}

// PID returns the object's meemoo PID.
func (o *Object) PID() (Identifier, bool) {
	return findIdentifier(o.Identifiers, TypePID)
}

// Characteristics captures the objectCharacteristics block of file and
// bitstream objects.
type Characteristics struct {
	Fixities []Fixity `xml:"fixity"`
	Size     *int64   `xml:"size"`
	Formats  []Format `xml:"format"`
}

// Fixity is a recorded message digest. Digests pass through as metadata;
// nothing is recomputed here.
type Fixity struct {
	Algorithm string `xml:"messageDigestAlgorithm"`
	Digest    string `xml:"messageDigest"`
}

// Format declares a file format by name and/or registry entry.
type Format struct {
	Designation *FormatDesignation `xml:"formatDesignation"`
	Registry    *FormatRegistry    `xml:"formatRegistry"`
}

type FormatDesignation struct {
	Name    string `xml:"formatName"`
	Version string `xml:"formatVersion"`
}

type FormatRegistry struct {
	Name string `xml:"formatRegistryName"`
	Key  string `xml:"formatRegistryKey"`
}

// SignificantProperties carries profile-specific property extensions,
// such as the film carrier description.
type SignificantProperties struct {
	Type       string      `xml:"significantPropertiesType"`
	Value      string      `xml:"significantPropertiesValue"`
	Extensions []Extension `xml:"significantPropertiesExtension"`
}

// Extension preserves the raw XML of an extension container so callers
// can decode the profile-specific content themselves.
type Extension struct {
	XML []byte `xml:",innerxml"`
}

// Relationship subtypes used by meemoo SIPs to tie representations and
// carriers to the intellectual entity they express.
const (
	IsMasterCopyOf        = "is master copy of"
	IsMezzanineCopyOf     = "is mezzanine copy of"
	IsAccessCopyOf        = "is access copy of"
	IsTranscriptionCopyOf = "is transcription copy of"
	IsCarrierCopyOf       = "is carrier copy of"

	HasMasterCopy        = "has master copy"
	HasMezzanineCopy     = "has mezzanine copy"
	HasAccessCopy        = "has access copy"
	HasTranscriptionCopy = "has transcription copy"
	HasCarrierCopy       = "has carrier copy"
)

// Relationship links an object to related objects, qualified by type and
// subtype.
type Relationship struct {
	Type    string       `xml:"relationshipType"`
	SubType string       `xml:"relationshipSubType"`
	Related []Identifier `xml:"relatedObjectIdentifier"`
}

// RelatedUUID returns the value of the first UUID-kind related object
// identifier.
func (r Relationship) RelatedUUID() (string, bool) {
	if id, ok := findIdentifier(r.Related, TypeUUID); ok {
		return id.Value, true
	}
	return "", false
}

// Agent is a PREMIS agent record.
type Agent struct {
	Identifiers []Identifier `xml:"agentIdentifier"`
	Name        string       `xml:"agentName"`
	Type        string       `xml:"agentType"`
}

// UUID returns the agent's UUID identifier.
func (a *Agent) UUID() (Identifier, bool) {
	return findIdentifier(a.Identifiers, TypeUUID)
}

// PrimaryIdentifier is the identifier an agent is best known by: the
// meemoo PID when present, the UUID otherwise.
func (a *Agent) PrimaryIdentifier() (Identifier, bool) {
	if id, ok := findIdentifier(a.Identifiers, TypePID); ok {
		return id, true
	}
	return a.UUID()
}
