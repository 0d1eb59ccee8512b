package premis

import (
	"strings"

	"github.com/pkg/errors"
)

// AgentRole classifies an event's linking-agent references. The set is
// closed; parsing rejects anything else.
type AgentRole string

const (
	RoleImplementer AgentRole = "implementer"
	RoleExecuter    AgentRole = "executer"
	RoleInstrument  AgentRole = "instrument"
)

// ParseAgentRole parses a linking agent role literal.
func ParseAgentRole(s string) (AgentRole, error) {
	switch r := AgentRole(s); r {
	case RoleImplementer, RoleExecuter, RoleInstrument:
		return r, nil
	}
	return "", errors.Errorf("unknown linking agent role %q", s)
}

// UnmarshalText lets the XML decoder reject unknown role literals while
// parsing instead of leaving them to trip the transformation later.
func (r *AgentRole) UnmarshalText(text []byte) error {
	parsed, err := ParseAgentRole(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ObjectRole classifies an event's linking-object references. The set is
// closed; parsing rejects anything else.
type ObjectRole string

const (
	RoleSource  ObjectRole = "source"
	RoleOutcome ObjectRole = "outcome"
)

// ParseObjectRole parses a linking object role literal.
func ParseObjectRole(s string) (ObjectRole, error) {
	switch r := ObjectRole(s); r {
	case RoleSource, RoleOutcome:
		return r, nil
	}
	return "", errors.Errorf("unknown linking object role %q", s)
}

func (r *ObjectRole) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectRole(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Event is a PREMIS event record with its agent and object links.
type Event struct {
	Identifier     Identifier      `xml:"eventIdentifier"`
	Type           string          `xml:"eventType"`
	DateTime       string          `xml:"eventDateTime"`
	Details        []EventDetail   `xml:"eventDetailInformation"`
	Outcomes       []EventOutcome  `xml:"eventOutcomeInformation"`
	LinkingAgents  []LinkingAgent  `xml:"linkingAgentIdentifier"`
	LinkingObjects []LinkingObject `xml:"linkingObjectIdentifier"`
}

type EventDetail struct {
	Detail string `xml:"eventDetail"`
}

// EventOutcome is one eventOutcomeInformation entry. The outcome literal
// itself is optional; an entry may carry only detail notes.
type EventOutcome struct {
	Outcome string               `xml:"eventOutcome"`
	Details []EventOutcomeDetail `xml:"eventOutcomeDetail"`
}

type EventOutcomeDetail struct {
	Note string `xml:"eventOutcomeDetailNote"`
}

// LinkingAgent references an agent by identifier, qualified by zero or
// more roles.
type LinkingAgent struct {
	Type  string      `xml:"linkingAgentIdentifierType"`
	Value string      `xml:"linkingAgentIdentifierValue"`
	Roles []AgentRole `xml:"linkingAgentRole"`
}

// Identifier returns the linked identifier pair.
func (l LinkingAgent) Identifier() Identifier {
	return Identifier{Type: l.Type, Value: l.Value}
}

// IsImplementer reports whether a role marks the agent as the
// organization responsible for the event.
func (l LinkingAgent) IsImplementer() bool { return l.hasRole(RoleImplementer) }

// IsExecuter reports whether a role marks the agent as the software that
// carried the event out.
func (l LinkingAgent) IsExecuter() bool { return l.hasRole(RoleExecuter) }

// IsInstrument reports whether a role marks the agent as hardware used
// during the event.
func (l LinkingAgent) IsInstrument() bool { return l.hasRole(RoleInstrument) }

// HasNoRole reports an untyped participant, a person associated with the
// event.
func (l LinkingAgent) HasNoRole() bool { return len(l.Roles) == 0 }

func (l LinkingAgent) hasRole(r AgentRole) bool {
	for _, have := range l.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// LinkingObject references an object by identifier, qualified by zero or
// more roles.
type LinkingObject struct {
	Type  string       `xml:"linkingObjectIdentifierType"`
	Value string       `xml:"linkingObjectIdentifierValue"`
	Roles []ObjectRole `xml:"linkingObjectRole"`
}

// Identifier returns the linked identifier pair.
func (l LinkingObject) Identifier() Identifier {
	return Identifier{Type: l.Type, Value: l.Value}
}

// IsSource reports whether the object is an input of the event.
func (l LinkingObject) IsSource() bool { return l.hasRole(RoleSource) }

// IsResult reports whether the object is an outcome of the event.
func (l LinkingObject) IsResult() bool { return l.hasRole(RoleOutcome) }

func (l LinkingObject) hasRole(r ObjectRole) bool {
	for _, have := range l.Roles {
		if have == r {
			return true
		}
	}
	return false
}
