package resolv

import (
	"path"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

// Relationship subtypes that tie a digital representation to its entity.
var digitalCopySubTypes = map[string]struct{}{
	premis.IsMasterCopyOf:        {},
	premis.IsMezzanineCopyOf:     {},
	premis.IsAccessCopyOf:        {},
	premis.IsTranscriptionCopyOf: {},
}

// representation projects one representation record. The record must
// describe exactly one representation object, tied to the entity by
// exactly one copy relationship.
func (t *Transformer) representation(rec *premis.Record) (*prov.DigitalRepresentation, error) {
	objs := rec.Representations()
	if len(objs) != 1 {
		return nil, resolutionErrorf("record must describe exactly one representation object, found %d", len(objs))
	}
	obj := objs[0]

	id, ok := obj.UUID()
	if !ok {
		return nil, resolutionErrorf("representation object has no UUID identifier")
	}

	var copies []premis.Relationship
	for _, rel := range obj.Relationships {
		if _, ok := digitalCopySubTypes[rel.SubType]; ok {
			copies = append(copies, rel)
		}
	}
	if len(copies) != 1 {
		return nil, resolutionErrorf("representation must declare exactly one copy relationship, found %d", len(copies))
	}

	related, ok := copies[0].RelatedUUID()
	if !ok {
		return nil, resolutionErrorf("relationship %q has no related UUID", copies[0].SubType)
	}

	rep := &prov.DigitalRepresentation{
		ID:         id.Value,
		Name:       "Digital Representation",
		Represents: prov.Reference{ID: related},
	}

	ref := &prov.Reference{ID: related}
	switch copies[0].SubType {
	case premis.IsMasterCopyOf:
		rep.IsMasterCopyOf = ref
	case premis.IsMezzanineCopyOf:
		rep.IsMezzanineCopyOf = ref
	case premis.IsAccessCopyOf:
		rep.IsAccessCopyOf = ref
	case premis.IsTranscriptionCopyOf:
		rep.IsTranscriptionCopyOf = ref
	}

	for _, f := range rec.Files() {
		file, err := t.file(f, rec.Path, id.Value)
		if err != nil {
			return nil, err
		}
		rep.Includes = append(rep.Includes, file)
	}

	return rep, nil
}

// file projects one file object. Exactly one size, fixity, and format
// must be declared across its characteristics, and the original name is
// required to locate the payload on disk.
func (t *Transformer) file(obj *premis.Object, recPath, repID string) (*prov.File, error) {
	id, ok := obj.UUID()
	if !ok {
		return nil, resolutionErrorf("file object has no UUID identifier")
	}

	var (
		sizes    []int64
		fixities []premis.Fixity
		formats  []premis.Format
	)
	for _, c := range obj.Characteristics {
		if c.Size != nil {
			sizes = append(sizes, *c.Size)
		}
		fixities = append(fixities, c.Fixities...)
		formats = append(formats, c.Formats...)
	}

	if len(sizes) != 1 {
		return nil, resolutionErrorf("file %s must declare exactly one size, found %d", id.Value, len(sizes))
	}
	if len(fixities) != 1 {
		return nil, resolutionErrorf("file %s must declare exactly one fixity, found %d", id.Value, len(fixities))
	}
	if len(formats) != 1 {
		return nil, resolutionErrorf("file %s must declare exactly one format, found %d", id.Value, len(formats))
	}

	fixType, err := fixityURI(fixities[0].Algorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", id.Value)
	}
	format, err := formatURI(formats[0])
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", id.Value)
	}

	if obj.OriginalName == "" {
		return nil, resolutionErrorf("file %s has no original name", id.Value)
	}

	return &prov.File{
		ID:           id.Value,
		OriginalName: obj.OriginalName,
		Size:         sizes[0],
		Fixity: prov.Fixity{
			ID:    uuid.NewString(),
			Type:  fixType,
			Value: fixities[0].Digest,
		},
		Format:       prov.Reference{ID: format},
		StoredAt:     prov.StorageLocation{FilePath: path.Join(recPath, "data", obj.OriginalName)},
		IsIncludedIn: []prov.Reference{{ID: repID}},
	}, nil
}
