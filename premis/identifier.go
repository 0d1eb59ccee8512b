package premis

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Identifier types with dedicated handling during transformation. The
// type set is open; anything outside these three is a local identifier.
const (
	TypeUUID    = "UUID"
	TypePID     = "MEEMOO-PID"
	TypeLocalID = "MEEMOO-LOCAL-ID"
)

// Identifier is a (type, value) pair naming an object, agent, or event.
// It is comparable and usable as a map key.
type Identifier struct {
	Type  string
	Value string
}

// IsUUID reports whether this is the SIP-internal UUID identifier.
func (id Identifier) IsUUID() bool { return id.Type == TypeUUID }

// IsPID reports whether this is a meemoo PID, the preferred external
// identifier of an entity.
func (id Identifier) IsPID() bool { return id.Type == TypePID }

// IsPrimary reports whether this is a content partner's primary local
// identifier.
func (id Identifier) IsPrimary() bool { return id.Type == TypeLocalID }

// IsLocal reports whether this is any other local identifier kind, one
// outside the three distinguished types.
func (id Identifier) IsLocal() bool {
	return id.Type != TypeUUID && id.Type != TypePID && id.Type != TypeLocalID
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s %s", id.Type, id.Value)
}

// UnmarshalXML decodes any of the PREMIS identifier containers
// (objectIdentifier, relatedObjectIdentifier, agentIdentifier,
// eventIdentifier). They share one shape: a child element whose name ends
// in Type and one whose name ends in Value.
func (id *Identifier) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			if err := d.DecodeElement(&text, &t); err != nil {
				return err
			}
			switch {
			case strings.HasSuffix(t.Name.Local, "Type"):
				id.Type = strings.TrimSpace(text)
			case strings.HasSuffix(t.Name.Local, "Value"):
				id.Value = strings.TrimSpace(text)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func findIdentifier(ids []Identifier, typ string) (Identifier, bool) {
	for _, id := range ids {
		if id.Type == typ {
			return id, true
		}
	}
	return Identifier{}, false
}
