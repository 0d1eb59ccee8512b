package resolv

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

// filmProperties is the significant-properties extension carried by film
// carriers. Elements are matched by local name; the hasip namespace
// prefix of the source document does not matter.
type filmProperties struct {
	NumberOfReels        *int          `xml:"numberOfReels"`
	HasMissingAudioReels *bool         `xml:"hasMissingAudioReels"`
	HasMissingImageReels *bool         `xml:"hasMissingImageReels"`
	StoredAt             []filmStorage `xml:"storedAt"`
}

type filmStorage struct {
	ImageReels []filmReel `xml:"imageReel"`
	AudioReels []filmReel `xml:"audioReel"`
}

type filmReel struct {
	Identifier           string        `xml:"identifier"`
	Medium               string        `xml:"medium"`
	Material             string        `xml:"material"`
	StockType            string        `xml:"stockType"`
	AspectRatio          string        `xml:"aspectRatio"`
	PreservationProblems []string      `xml:"preservationProblems"`
	ColoringTypes        []string      `xml:"coloringType"`
	Captioning           []filmCaption `xml:"hasCaptioning"`
}

type filmCaption struct {
	OpenCaptions []struct {
		Languages []string `xml:"inLanguage"`
	} `xml:"openCaptions"`
}

// carrier extracts the physical carrier representation from the package
// record, when one is declared. Only film profile packages carry one.
func (t *Transformer) carrier() (*prov.CarrierRepresentation, error) {
	objs := t.pkg.Representations()
	switch len(objs) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, resolutionErrorf("package record describes %d representation objects, at most one carrier is supported", len(objs))
	}
	obj := objs[0]

	id, ok := obj.UUID()
	if !ok {
		return nil, resolutionErrorf("carrier object has no UUID identifier")
	}

	var rels []premis.Relationship
	for _, rel := range obj.Relationships {
		if rel.SubType == premis.IsCarrierCopyOf {
			rels = append(rels, rel)
		}
	}
	if len(rels) != 1 {
		return nil, resolutionErrorf("carrier must declare exactly one %q relationship, found %d", premis.IsCarrierCopyOf, len(rels))
	}

	related, ok := rels[0].RelatedUUID()
	if !ok {
		return nil, resolutionErrorf("relationship %q has no related UUID", premis.IsCarrierCopyOf)
	}

	props, err := parseFilmProperties(obj)
	if err != nil {
		return nil, err
	}

	carrier := &prov.CarrierRepresentation{
		ID:                   id.Value,
		Represents:           prov.Reference{ID: related},
		IsCarrierCopyOf:      prov.Reference{ID: related},
		NumberOfReels:        props.NumberOfReels,
		HasMissingAudioReels: props.HasMissingAudioReels,
		HasMissingImageReels: props.HasMissingImageReels,
	}

	for _, st := range props.StoredAt {
		for _, reel := range st.ImageReels {
			img, err := imageReel(reel)
			if err != nil {
				return nil, err
			}
			carrier.ImageReels = append(carrier.ImageReels, img)
		}
		for _, reel := range st.AudioReels {
			aud, err := audioReel(reel)
			if err != nil {
				return nil, err
			}
			carrier.AudioReels = append(carrier.AudioReels, aud)
		}
	}

	return carrier, nil
}

// parseFilmProperties decodes the carrier's film description. At most one
// extension blob may be present across the object's significant
// properties; a carrier without one simply has no reel detail.
func parseFilmProperties(obj *premis.Object) (*filmProperties, error) {
	var blobs [][]byte
	for _, sp := range obj.SignificantProperties {
		for _, ext := range sp.Extensions {
			blobs = append(blobs, ext.XML)
		}
	}

	switch len(blobs) {
	case 0:
		return &filmProperties{}, nil
	case 1:
	default:
		return nil, resolutionErrorf("carrier declares %d significant-properties extensions, at most one is supported", len(blobs))
	}

	var props filmProperties
	doc := append(append([]byte("<extension>"), blobs[0]...), "</extension>"...)
	if err := xml.Unmarshal(doc, &props); err != nil {
		return nil, resolutionErrorf("cannot decode film carrier properties: %v", err)
	}
	return &props, nil
}

func imageReel(r filmReel) (prov.ImageReel, error) {
	if err := checkReel(r); err != nil {
		return prov.ImageReel{}, err
	}

	for _, c := range r.ColoringTypes {
		if err := checkColoringType(c); err != nil {
			return prov.ImageReel{}, errors.Wrapf(err, "image reel %s", r.Identifier)
		}
	}

	var langs []string
	for _, hc := range r.Captioning {
		for _, oc := range hc.OpenCaptions {
			langs = append(langs, oc.Languages...)
		}
	}

	return prov.ImageReel{
		ID:                   r.Identifier,
		Medium:               carrierTypeURI(r.Medium),
		Material:             r.Material,
		StockType:            r.StockType,
		AspectRatio:          r.AspectRatio,
		PreservationProblems: r.PreservationProblems,
		ColoringTypes:        r.ColoringTypes,
		OpenCaptionLanguages: langs,
	}, nil
}

func audioReel(r filmReel) (prov.AudioReel, error) {
	if err := checkReel(r); err != nil {
		return prov.AudioReel{}, err
	}

	return prov.AudioReel{
		ID:                   r.Identifier,
		Medium:               carrierTypeURI(r.Medium),
		Material:             r.Material,
		StockType:            r.StockType,
		AspectRatio:          r.AspectRatio,
		PreservationProblems: r.PreservationProblems,
	}, nil
}

func checkReel(r filmReel) error {
	if r.Identifier == "" {
		return resolutionErrorf("film reel declares no identifier")
	}
	if r.Medium == "" {
		return resolutionErrorf("film reel %s declares no medium", r.Identifier)
	}
	return nil
}
