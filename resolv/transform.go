package resolv

import (
	"github.com/pkg/errors"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

// Transformer turns the parsed preservation records of one SIP into its
// normalized provenance graph. It owns a fresh index over the records and
// never mutates them, so independent SIPs can transform concurrently.
type Transformer struct {
	pkg   *premis.Record
	reprs []*premis.Record
	index *Index
}

// NewTransformer builds a transformer over the package record and the
// representation records of one SIP.
func NewTransformer(pkg *premis.Record, reprs ...*premis.Record) *Transformer {
	records := make([]*premis.Record, 0, len(reprs)+1)
	records = append(records, pkg)
	records = append(records, reprs...)

	return &Transformer{
		pkg:   pkg,
		reprs: reprs,
		index: NewIndex(records...),
	}
}

// Transform resolves and normalizes the whole SIP. The first broken
// invariant aborts with an error whose cause is a ResolutionError.
func (t *Transformer) Transform() (*prov.SIP, error) {
	carrier, err := t.carrier()
	if err != nil {
		return nil, errors.Wrap(err, "carrier representation")
	}

	entity, err := t.entity(carrier)
	if err != nil {
		return nil, errors.Wrap(err, "intellectual entity")
	}

	reps, err := t.representations()
	if err != nil {
		return nil, err
	}
	entity.Representations = reps
	entity.Carrier = carrier

	events, err := t.events()
	if err != nil {
		return nil, err
	}

	return &prov.SIP{
		Entity: entity,
		Events: events,
		Agents: t.agents(),
	}, nil
}

// entity projects the package's single intellectual entity. Identifiers
// are split by kind: the UUID becomes the node id, the PID (or failing
// that the UUID) the external identifier, and the remaining kinds land in
// the primary and local identifier lists.
func (t *Transformer) entity(carrier *prov.CarrierRepresentation) (*prov.IntellectualEntity, error) {
	ents := t.pkg.Entities()
	if len(ents) != 1 {
		return nil, resolutionErrorf("package record must describe exactly one intellectual entity, found %d", len(ents))
	}
	obj := ents[0]

	id, ok := obj.UUID()
	if !ok {
		return nil, resolutionErrorf("intellectual entity has no UUID identifier")
	}

	entity := &prov.IntellectualEntity{
		ID:         id.Value,
		Identifier: id.Value,
	}
	if pid, ok := obj.PID(); ok {
		entity.Identifier = pid.Value
	}

	for _, oid := range obj.Identifiers {
		switch {
		case oid.IsPrimary():
			entity.PrimaryIdentifiers = append(entity.PrimaryIdentifiers, oid.Value)
		case oid.IsLocal():
			entity.LocalIdentifiers = append(entity.LocalIdentifiers, oid.Value)
		}
	}

	for _, rel := range obj.Relationships {
		var list *[]prov.Reference
		switch rel.SubType {
		case premis.HasMasterCopy:
			list = &entity.HasMasterCopy
		case premis.HasMezzanineCopy:
			list = &entity.HasMezzanineCopy
		case premis.HasAccessCopy:
			list = &entity.HasAccessCopy
		case premis.HasTranscriptionCopy:
			list = &entity.HasTranscriptionCopy
		default:
			continue
		}

		related, ok := rel.RelatedUUID()
		if !ok {
			return nil, resolutionErrorf("entity relationship %q has no related UUID", rel.SubType)
		}
		*list = append(*list, prov.Reference{ID: related})
	}

	if carrier != nil {
		entity.HasCarrierCopy = &prov.Reference{ID: carrier.ID}
	}

	return entity, nil
}

func (t *Transformer) representations() ([]*prov.DigitalRepresentation, error) {
	var reps []*prov.DigitalRepresentation
	for _, rec := range t.reprs {
		rep, err := t.representation(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "representation record %s", rec.Path)
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

func (t *Transformer) events() ([]*prov.Event, error) {
	var events []*prov.Event
	for i := range t.pkg.Events {
		ev, err := t.event(&t.pkg.Events[i])
		if err != nil {
			return nil, errors.Wrapf(err, "event %s", t.pkg.Events[i].Identifier.Value)
		}
		events = append(events, ev)
	}
	return events, nil
}

// agents projects the package agents that carry a UUID. Agents known only
// by other identifier kinds still resolve through the index for event
// links; they are just not part of the census.
func (t *Transformer) agents() []prov.Agent {
	var agents []prov.Agent
	for i := range t.pkg.Agents {
		a := &t.pkg.Agents[i]
		id, ok := a.UUID()
		if !ok {
			continue
		}
		agents = append(agents, prov.Agent{
			Identifier: id.Value,
			Name:       a.Name,
			Type:       a.Type,
		})
	}
	return agents
}
