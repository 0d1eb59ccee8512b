package resolv

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
)

// ResolutionError is the failure produced when a SIP's metadata breaks a
// resolution invariant: an unresolvable agent, a cardinality violation,
// or a literal outside a closed vocabulary.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string {
	return e.Reason
}

// IsResolutionError reports whether the cause of err is a ResolutionError.
func IsResolutionError(err error) bool {
	_, ok := errors.Cause(err).(*ResolutionError)
	return ok
}

func resolutionErrorf(format string, args ...interface{}) error {
	return &ResolutionError{Reason: fmt.Sprintf(format, args...)}
}

// Index maps every identifier declared in a SIP's records to the object
// or agent carrying it. An object or agent is registered under each of
// its identifiers, so a lookup by any one of them lands on the same
// record.
type Index struct {
	objects map[premis.Identifier]*premis.Object
	agents  map[premis.Identifier]*premis.Agent
}

// NewIndex indexes the given records. When two records claim the same
// identifier the first registration wins, so callers pass the package
// record before the representation records to give package-level
// descriptions precedence.
func NewIndex(records ...*premis.Record) *Index {
	ix := &Index{
		objects: make(map[premis.Identifier]*premis.Object),
		agents:  make(map[premis.Identifier]*premis.Agent),
	}

	for _, rec := range records {
		for i := range rec.Objects {
			o := &rec.Objects[i]
			for _, id := range o.Identifiers {
				if _, taken := ix.objects[id]; !taken {
					ix.objects[id] = o
				}
			}
		}
		for i := range rec.Agents {
			a := &rec.Agents[i]
			for _, id := range a.Identifiers {
				if _, taken := ix.agents[id]; !taken {
					ix.agents[id] = a
				}
			}
		}
	}

	return ix
}

// Agent resolves an agent reference. A miss is fatal: events may not
// link agents that no record describes.
func (ix *Index) Agent(id premis.Identifier) (*premis.Agent, error) {
	a, ok := ix.agents[id]
	if !ok {
		return nil, resolutionErrorf("no agent with identifier %s", id)
	}
	return a, nil
}

// Object resolves an object reference. A miss yields a temporary
// placeholder rather than an error: events routinely reference ephemeral
// intermediates that no record persists.
func (ix *Index) Object(id premis.Identifier) *premis.Object {
	if o, ok := ix.objects[id]; ok {
		return o
	}
	return premis.NewTemporaryObject(id)
}
