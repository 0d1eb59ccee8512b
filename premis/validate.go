package premis

import "github.com/pkg/errors"

// Validate checks the structural properties of a parsed record that
// resolution relies on: every object, agent, and event must carry at
// least one identifier.
func (rec *Record) Validate() error {
	for i := range rec.Objects {
		o := &rec.Objects[i]
		if len(o.Identifiers) == 0 {
			return errors.Errorf("object %d (%s) has no identifiers", i, o.Type)
		}
	}

	for i := range rec.Agents {
		a := &rec.Agents[i]
		if len(a.Identifiers) == 0 {
			return errors.Errorf("agent %d (%s) has no identifiers", i, a.Name)
		}
	}

	for i := range rec.Events {
		e := &rec.Events[i]
		if e.Identifier == (Identifier{}) {
			return errors.Errorf("event %d (%s) has no identifier", i, e.Type)
		}
	}

	return nil
}
