package prov

import "time"

// Event is a normalized preservation event. Type and Outcome are
// vocabulary URIs; participants and linked objects are grouped by the
// role they played.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	StartedAt time.Time `json:"startedAtTime"`
	EndedAt   time.Time `json:"endedAtTime"`

	ImplementedBy     Organization    `json:"implementedBy"`
	ExecutedBy        *SoftwareAgent  `json:"executedBy,omitempty"`
	Instruments       []HardwareAgent `json:"instrument,omitempty"`
	WasAssociatedWith []Person        `json:"wasAssociatedWith,omitempty"`

	Sources []Reference `json:"source,omitempty"`
	Results []Result    `json:"result,omitempty"`

	Note        string `json:"note,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	OutcomeNote string `json:"outcomeNote,omitempty"`
}

// Result is what an event produced: either a reference to an object
// declared elsewhere in the graph, or an ephemeral object embedded in
// place. Exactly one side is set.
type Result struct {
	Reference *Reference       `json:"reference,omitempty"`
	Ephemeral *EphemeralObject `json:"ephemeral,omitempty"`
}

// EphemeralObject stands in for an intermediate artifact that the
// pipeline consumed without any record persisting it.
type EphemeralObject struct {
	ID string `json:"id"`
}

// Organization is the party responsible for an event.
type Organization struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// SoftwareAgent is the software that carried an event out.
type SoftwareAgent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HardwareAgent carries only a name; SIP metadata records no more about
// the hardware used.
type HardwareAgent struct {
	Name string `json:"name"`
}

// Person is a participant associated with an event without a role.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
