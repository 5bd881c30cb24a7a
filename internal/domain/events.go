package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventValueCommitted  EventType = "ValueCommitted"
	EventCheckboxToggled EventType = "CheckboxToggled"
	EventFormSubmitted   EventType = "FormSubmitted"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ValueCommittedEvent is emitted when a combobox commits an option
type ValueCommittedEvent struct {
	Field  string
	Value  any
	Option Option
}

func (e ValueCommittedEvent) Type() EventType { return EventValueCommitted }

// CheckboxToggledEvent is emitted when a checkbox changes state
type CheckboxToggledEvent struct {
	Field   string
	Value   any
	Checked bool
}

func (e CheckboxToggledEvent) Type() EventType { return EventCheckboxToggled }

// FormSubmittedEvent carries every field's final value when the form exits
type FormSubmittedEvent struct {
	Values map[string]any
}

func (e FormSubmittedEvent) Type() EventType { return EventFormSubmitted }

// ConfigLoadedEvent is emitted after a form definition is read
type ConfigLoadedEvent struct {
	Path   string
	Fields int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after a form definition is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
