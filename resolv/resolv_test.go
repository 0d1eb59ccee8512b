package resolv_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/resolv"
)

func TestIndexAliasing(t *testing.T) {
	rec := &premis.Record{
		Objects: []premis.Object{{
			Type: premis.File,
			Identifiers: []premis.Identifier{
				{Type: "UUID", Value: "uuid-1"},
				{Type: "MEEMOO-PID", Value: "pid-1"},
			},
		}},
	}

	ix := resolv.NewIndex(rec)

	byUUID := ix.Object(premis.Identifier{Type: "UUID", Value: "uuid-1"})
	byPID := ix.Object(premis.Identifier{Type: "MEEMOO-PID", Value: "pid-1"})

	if byUUID != byPID {
		t.Error("lookups through different identifiers should land on the same object")
	}
	if byUUID != &rec.Objects[0] {
		t.Error("lookup should return the indexed record object")
	}
}

func TestIndexPackagePrecedence(t *testing.T) {
	shared := premis.Identifier{Type: "UUID", Value: "uuid-shared"}

	pkg := &premis.Record{
		Objects: []premis.Object{{
			Type:         premis.Representation,
			Identifiers:  []premis.Identifier{shared},
			OriginalName: "from-package",
		}},
	}
	repr := &premis.Record{
		Objects: []premis.Object{{
			Type:         premis.Representation,
			Identifiers:  []premis.Identifier{shared},
			OriginalName: "from-representation",
		}},
	}

	ix := resolv.NewIndex(pkg, repr)

	if got := ix.Object(shared).OriginalName; got != "from-package" {
		t.Errorf("expected the package object to win, got %q", got)
	}
}

func TestIndexObjectMiss(t *testing.T) {
	ix := resolv.NewIndex(&premis.Record{})

	id := premis.Identifier{Type: "UUID", Value: "uuid-ephemeral"}
	o := ix.Object(id)

	if !o.IsTemporary() {
		t.Error("unresolvable object should yield a temporary placeholder")
	}

	diff := deep.Equal(o.Identifiers, []premis.Identifier{id})
	if diff != nil {
		t.Error(diff)
	}
}

func TestIndexAgentMiss(t *testing.T) {
	ix := resolv.NewIndex(&premis.Record{})

	_, err := ix.Agent(premis.Identifier{Type: "UUID", Value: "uuid-nobody"})
	if err == nil {
		t.Fatal("unresolvable agent should be an error")
	}
	if !resolv.IsResolutionError(err) {
		t.Errorf("expected a resolution error, got %T", err)
	}
}

func TestIndexAgentHit(t *testing.T) {
	rec := &premis.Record{
		Agents: []premis.Agent{{
			Identifiers: []premis.Identifier{
				{Type: "MEEMOO-OR-ID", Value: "OR-w66976m"},
				{Type: "UUID", Value: "uuid-agent"},
			},
			Name: "meemoo",
			Type: "organization",
		}},
	}

	ix := resolv.NewIndex(rec)

	a, err := ix.Agent(premis.Identifier{Type: "MEEMOO-OR-ID", Value: "OR-w66976m"})
	if err != nil {
		t.Fatal(err)
	}
	if a != &rec.Agents[0] {
		t.Error("lookup should return the indexed record agent")
	}
}
