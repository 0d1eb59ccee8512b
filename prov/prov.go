package prov

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// SIP is the root of the normalized graph for one package.
type SIP struct {
	Profile string              `json:"profile,omitempty"`
	Entity  *IntellectualEntity `json:"entity"`
	Events  []*Event            `json:"events"`
	Agents  []Agent             `json:"premisAgents,omitempty"`
}

// Parse reads a serialized graph.
func Parse(r io.Reader, s *SIP) error {
	err := json.NewDecoder(r).Decode(s)
	return errors.Wrap(err, "could not decode provenance graph")
}

// Serialize writes the graph as json.
func (s *SIP) Serialize(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}

// Reference points at a node declared elsewhere in the graph.
type Reference struct {
	ID string `json:"id"`
}

// IntellectualEntity is the work the package preserves. Identifier holds
// the id the entity is known by externally: the meemoo PID when assigned,
// the UUID otherwise.
type IntellectualEntity struct {
	ID                 string   `json:"id"`
	Identifier         string   `json:"identifier"`
	PrimaryIdentifiers []string `json:"primaryIdentifier,omitempty"`
	LocalIdentifiers   []string `json:"localIdentifier,omitempty"`

	Representations []*DigitalRepresentation `json:"isRepresentedBy"`
	Carrier         *CarrierRepresentation   `json:"carrierRepresentation,omitempty"`

	HasCarrierCopy       *Reference  `json:"hasCarrierCopy,omitempty"`
	HasMasterCopy        []Reference `json:"hasMasterCopy,omitempty"`
	HasMezzanineCopy     []Reference `json:"hasMezzanineCopy,omitempty"`
	HasAccessCopy        []Reference `json:"hasAccessCopy,omitempty"`
	HasTranscriptionCopy []Reference `json:"hasTranscriptionCopy,omitempty"`
}

// DigitalRepresentation groups the files of one representation directory.
// Exactly one of the four copy fields is set, mirroring the relationship
// that tied the representation to its entity.
type DigitalRepresentation struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Represents Reference `json:"represents"`
	Includes   []*File   `json:"includes"`

	IsMasterCopyOf        *Reference `json:"isMasterCopyOf,omitempty"`
	IsMezzanineCopyOf     *Reference `json:"isMezzanineCopyOf,omitempty"`
	IsAccessCopyOf        *Reference `json:"isAccessCopyOf,omitempty"`
	IsTranscriptionCopyOf *Reference `json:"isTranscriptionCopyOf,omitempty"`
}

// File is one digital file of a representation.
type File struct {
	ID           string          `json:"id"`
	OriginalName string          `json:"originalName"`
	Size         int64           `json:"size"`
	Fixity       Fixity          `json:"fixity"`
	Format       Reference       `json:"format"`
	StoredAt     StorageLocation `json:"storedAt"`
	IsIncludedIn []Reference     `json:"isIncludedIn"`
}

// Fixity is the recorded digest of a file, carried through unverified.
// Type names the digest algorithm as a vocabulary URI.
type Fixity struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StorageLocation names where a file lives inside the unpacked SIP,
// relative to the directory the SIP was unpacked into.
type StorageLocation struct {
	FilePath string `json:"filePath"`
}

// CarrierRepresentation describes the physical film carrier of the
// entity, when the package declares one.
type CarrierRepresentation struct {
	ID              string    `json:"id"`
	Represents      Reference `json:"represents"`
	IsCarrierCopyOf Reference `json:"isCarrierCopyOf"`

	NumberOfReels        *int  `json:"numberOfReels,omitempty"`
	HasMissingAudioReels *bool `json:"hasMissingAudioReels,omitempty"`
	HasMissingImageReels *bool `json:"hasMissingImageReels,omitempty"`

	ImageReels []ImageReel `json:"imageReels,omitempty"`
	AudioReels []AudioReel `json:"audioReels,omitempty"`
}

// ImageReel is one physical image reel of a film carrier. Medium is a
// carrier-type vocabulary URI.
type ImageReel struct {
	ID                   string   `json:"id"`
	Medium               string   `json:"medium"`
	Material             string   `json:"material,omitempty"`
	StockType            string   `json:"stockType,omitempty"`
	AspectRatio          string   `json:"aspectRatio,omitempty"`
	PreservationProblems []string `json:"preservationProblems,omitempty"`
	ColoringTypes        []string `json:"coloringType,omitempty"`
	OpenCaptionLanguages []string `json:"openCaptionLanguage,omitempty"`
}

// AudioReel is one physical audio reel of a film carrier.
type AudioReel struct {
	ID                   string   `json:"id"`
	Medium               string   `json:"medium"`
	Material             string   `json:"material,omitempty"`
	StockType            string   `json:"stockType,omitempty"`
	AspectRatio          string   `json:"aspectRatio,omitempty"`
	PreservationProblems []string `json:"preservationProblems,omitempty"`
}

// Agent is the flat projection of a package-level agent record, kept for
// consumers that need the full acting-agent census of the SIP.
type Agent struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}
