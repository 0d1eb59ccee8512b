package premis_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
)

func TestObjectTypeRoundTrip(t *testing.T) {
	cases := map[string]premis.ObjectType{
		"premis:intellectualEntity": premis.IntellectualEntity,
		"premis:representation":     premis.Representation,
		"premis:file":               premis.File,
		"premis:bitstream":          premis.Bitstream,
		"file":                      premis.File,
		"Representation":            premis.Representation,
	}

	for literal, want := range cases {
		literal, want := literal, want
		t.Run(literal, func(t *testing.T) {
			got, err := premis.ParseObjectType(literal)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("parsed %q to %s, wanted %s", literal, got, want)
			}
		})
	}

	if _, err := premis.ParseObjectType("premis:agent"); err == nil {
		t.Error("expected an error for a type outside the object union")
	}
	if _, err := premis.ParseObjectType(""); err == nil {
		t.Error("expected an error for an empty type")
	}
}

func TestTemporaryObject(t *testing.T) {
	id := premis.Identifier{Type: "UUID", Value: "uuid-ephemeral"}
	o := premis.NewTemporaryObject(id)

	if !o.IsTemporary() {
		t.Error("placeholder should report temporary")
	}

	diff := deep.Equal(o.Identifiers, []premis.Identifier{id})
	if diff != nil {
		t.Error(diff)
	}

	got, ok := o.UUID()
	if !ok || got != id {
		t.Errorf("placeholder UUID = %s (found: %t)", got, ok)
	}
}

func TestIdentifierPredicates(t *testing.T) {
	cases := []struct {
		name    string
		id      premis.Identifier
		uuid    bool
		pid     bool
		primary bool
		local   bool
	}{
		{name: "uuid", id: premis.Identifier{Type: "UUID", Value: "u"}, uuid: true},
		{name: "pid", id: premis.Identifier{Type: "MEEMOO-PID", Value: "p"}, pid: true},
		{name: "primary", id: premis.Identifier{Type: "MEEMOO-LOCAL-ID", Value: "l"}, primary: true},
		{name: "local", id: premis.Identifier{Type: "Topstuk_ID", Value: "t"}, local: true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if c.id.IsUUID() != c.uuid || c.id.IsPID() != c.pid ||
				c.id.IsPrimary() != c.primary || c.id.IsLocal() != c.local {
				t.Errorf("wrong classification for %s", c.id)
			}
		})
	}
}

func TestAgentPrimaryIdentifier(t *testing.T) {
	withPID := premis.Agent{
		Identifiers: []premis.Identifier{
			{Type: "UUID", Value: "uuid-agent"},
			{Type: "MEEMOO-PID", Value: "pid-agent"},
		},
	}
	id, ok := withPID.PrimaryIdentifier()
	if !ok || id.Value != "pid-agent" {
		t.Errorf("PID should win, got %s (found: %t)", id, ok)
	}

	uuidOnly := premis.Agent{
		Identifiers: []premis.Identifier{{Type: "UUID", Value: "uuid-agent"}},
	}
	id, ok = uuidOnly.PrimaryIdentifier()
	if !ok || id.Value != "uuid-agent" {
		t.Errorf("UUID should be the fallback, got %s (found: %t)", id, ok)
	}

	neither := premis.Agent{
		Identifiers: []premis.Identifier{{Type: "MEEMOO-OR-ID", Value: "or-id"}},
	}
	if _, ok := neither.PrimaryIdentifier(); ok {
		t.Error("agent without PID or UUID should have no primary identifier")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]premis.Record{
		"object without identifiers": {
			Objects: []premis.Object{{Type: premis.File}},
		},
		"agent without identifiers": {
			Agents: []premis.Agent{{Name: "nameless"}},
		},
		"event without identifier": {
			Events: []premis.Event{{Type: "check"}},
		},
	}

	for name, rec := range cases {
		rec := rec
		t.Run(name, func(t *testing.T) {
			if err := rec.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}

	ok := premis.Record{
		Objects: []premis.Object{{
			Type:        premis.File,
			Identifiers: []premis.Identifier{{Type: "UUID", Value: "u"}},
		}},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid record rejected: %s", err)
	}
}
