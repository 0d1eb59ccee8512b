package resolv

import (
	"strings"
	"time"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

// agentLink pairs an event's linking-agent entry with the agent it
// resolved to.
type agentLink struct {
	agent *premis.Agent
	link  premis.LinkingAgent
}

// objectLink pairs an event's linking-object entry with the object it
// resolved to, possibly a temporary placeholder.
type objectLink struct {
	object *premis.Object
	link   premis.LinkingObject
}

// event normalizes one package event. Every link is resolved up front;
// the resolved links are then projected by role.
func (t *Transformer) event(ev *premis.Event) (*prov.Event, error) {
	agents, objects, err := t.resolveLinks(ev)
	if err != nil {
		return nil, err
	}

	when, err := parseEventTime(ev.DateTime)
	if err != nil {
		return nil, err
	}

	impl, err := implementedBy(agents)
	if err != nil {
		return nil, err
	}
	exec, err := executedBy(agents)
	if err != nil {
		return nil, err
	}
	people, err := associated(agents)
	if err != nil {
		return nil, err
	}

	srcs, err := sources(objects)
	if err != nil {
		return nil, err
	}
	res, err := results(objects)
	if err != nil {
		return nil, err
	}

	outcome, outcomeNote, err := eventOutcome(ev)
	if err != nil {
		return nil, err
	}

	return &prov.Event{
		ID:                ev.Identifier.Value,
		Type:              eventTypeURI(ev.Type),
		StartedAt:         when,
		EndedAt:           when,
		ImplementedBy:     impl,
		ExecutedBy:        exec,
		Instruments:       instruments(agents),
		WasAssociatedWith: people,
		Sources:           srcs,
		Results:           res,
		Note:              eventNote(ev),
		Outcome:           outcome,
		OutcomeNote:       outcomeNote,
	}, nil
}

func (t *Transformer) resolveLinks(ev *premis.Event) ([]agentLink, []objectLink, error) {
	agents := make([]agentLink, 0, len(ev.LinkingAgents))
	for _, l := range ev.LinkingAgents {
		a, err := t.index.Agent(l.Identifier())
		if err != nil {
			return nil, nil, err
		}
		agents = append(agents, agentLink{agent: a, link: l})
	}

	objects := make([]objectLink, 0, len(ev.LinkingObjects))
	for _, l := range ev.LinkingObjects {
		objects = append(objects, objectLink{object: t.index.Object(l.Identifier()), link: l})
	}

	return agents, objects, nil
}

// implementedBy projects the one agent responsible for the event. Its
// identifier is the agent's PID, or the UUID when no PID is assigned.
func implementedBy(agents []agentLink) (prov.Organization, error) {
	var impl []agentLink
	for _, a := range agents {
		if a.link.IsImplementer() {
			impl = append(impl, a)
		}
	}
	if len(impl) != 1 {
		return prov.Organization{}, resolutionErrorf("event must link exactly one implementer agent, found %d", len(impl))
	}

	id, ok := impl[0].agent.PrimaryIdentifier()
	if !ok {
		return prov.Organization{}, resolutionErrorf("implementer agent %q has no PID or UUID identifier", impl[0].agent.Name)
	}

	return prov.Organization{Identifier: id.Value, Name: impl[0].agent.Name}, nil
}

func executedBy(agents []agentLink) (*prov.SoftwareAgent, error) {
	var exec []agentLink
	for _, a := range agents {
		if a.link.IsExecuter() {
			exec = append(exec, a)
		}
	}

	switch len(exec) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, resolutionErrorf("event links %d executer agents, at most one is supported", len(exec))
	}

	id, ok := exec[0].agent.PrimaryIdentifier()
	if !ok {
		return nil, resolutionErrorf("executer agent %q has no PID or UUID identifier", exec[0].agent.Name)
	}

	return &prov.SoftwareAgent{ID: id.Value, Name: exec[0].agent.Name}, nil
}

func instruments(agents []agentLink) []prov.HardwareAgent {
	var hw []prov.HardwareAgent
	for _, a := range agents {
		if a.link.IsInstrument() {
			hw = append(hw, prov.HardwareAgent{Name: a.agent.Name})
		}
	}
	return hw
}

// associated projects the agents linked without any role, the persons
// present at the event.
func associated(agents []agentLink) ([]prov.Person, error) {
	var people []prov.Person
	for _, a := range agents {
		if !a.link.HasNoRole() {
			continue
		}

		id, ok := a.agent.UUID()
		if !ok {
			return nil, resolutionErrorf("associated agent %q has no UUID identifier", a.agent.Name)
		}
		people = append(people, prov.Person{ID: id.Value, Name: a.agent.Name})
	}
	return people, nil
}

// sources projects the event's inputs. Sources are always references,
// whether or not a record persists the object.
func sources(objects []objectLink) ([]prov.Reference, error) {
	var refs []prov.Reference
	for _, o := range objects {
		if !o.link.IsSource() {
			continue
		}

		id, ok := o.object.UUID()
		if !ok {
			return nil, resolutionErrorf("source object %s has no UUID identifier", o.link.Identifier())
		}
		refs = append(refs, prov.Reference{ID: id.Value})
	}
	return refs, nil
}

// results projects the event's outputs, in link order. An output that
// resolved to a persisted object becomes a reference; one that resolved
// to a temporary placeholder is embedded as an ephemeral object.
func results(objects []objectLink) ([]prov.Result, error) {
	var res []prov.Result
	for _, o := range objects {
		if !o.link.IsResult() {
			continue
		}

		id, ok := o.object.UUID()
		if !ok {
			return nil, resolutionErrorf("result object %s has no UUID identifier", o.link.Identifier())
		}

		if o.object.IsTemporary() {
			res = append(res, prov.Result{Ephemeral: &prov.EphemeralObject{ID: id.Value}})
		} else {
			res = append(res, prov.Result{Reference: &prov.Reference{ID: id.Value}})
		}
	}
	return res, nil
}

func eventNote(ev *premis.Event) string {
	parts := make([]string, 0, len(ev.Details))
	for _, d := range ev.Details {
		parts = append(parts, d.Detail)
	}
	return joinNonEmpty(parts)
}

// eventOutcome projects the at most one outcome entry of an event. The
// outcome literal itself is optional; an entry may carry only notes.
func eventOutcome(ev *premis.Event) (outcome, note string, err error) {
	switch len(ev.Outcomes) {
	case 0:
		return "", "", nil
	case 1:
	default:
		return "", "", resolutionErrorf("event has %d outcome entries, at most one is supported", len(ev.Outcomes))
	}

	entry := ev.Outcomes[0]
	if entry.Outcome != "" {
		outcome, err = outcomeURI(entry.Outcome)
		if err != nil {
			return "", "", err
		}
	}

	parts := make([]string, 0, len(entry.Details))
	for _, d := range entry.Details {
		parts = append(parts, d.Note)
	}
	return outcome, joinNonEmpty(parts), nil
}

func joinNonEmpty(parts []string) string {
	var keep []string
	for _, p := range parts {
		if p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, "\n")
}

// Event timestamps occur as RFC 3339, as naive datetimes, and as bare
// dates.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, resolutionErrorf("cannot parse event datetime %q", s)
}
