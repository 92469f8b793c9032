package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanStarted        EventType = "ScanStarted"
	EventScanCompleted      EventType = "ScanCompleted"
	EventScanRequested      EventType = "ScanRequested"
	EventElementsDiscovered EventType = "ElementsDiscovered"
	EventOpenRequested      EventType = "OpenRequested"
	EventOpenCompleted      EventType = "OpenCompleted"
	EventYankCompleted      EventType = "YankCompleted"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanStartedEvent is emitted when a document scan begins
type ScanStartedEvent struct {
	Path string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when a document scan finishes
type ScanCompletedEvent struct {
	Path          string
	ElementsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent asks the discovery service to scan a document
type ScanRequestedEvent struct {
	Path string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ElementsDiscoveredEvent carries the ordered elements of a scanned document
type ElementsDiscoveredEvent struct {
	Document Document
}

func (e ElementsDiscoveredEvent) Type() EventType { return EventElementsDiscovered }

// OpenRequestedEvent is emitted when the user activates an element with a target
type OpenRequestedEvent struct {
	Target string
	Index  int
}

func (e OpenRequestedEvent) Type() EventType { return EventOpenRequested }

// OpenCompletedEvent reports the outcome of opening an activation target
type OpenCompletedEvent struct {
	Target string
	Err    error
}

func (e OpenCompletedEvent) Type() EventType { return EventOpenCompleted }

// YankCompletedEvent reports the outcome of a clipboard write
type YankCompletedEvent struct {
	Elements int
	Err      error
}

func (e YankCompletedEvent) Type() EventType { return EventYankCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
