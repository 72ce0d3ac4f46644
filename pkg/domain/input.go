package domain

import "fmt"

// InputKind classifies a user event.
type InputKind string

const (
	InputSelect InputKind = "select"
	InputQuery  InputKind = "query"
	InputBack   InputKind = "back"
	InputReset  InputKind = "reset"
)

// Input is a user event delivered to the navigator.
type Input struct {
	Kind  InputKind `json:"kind"`
	Value string    `json:"value,omitempty"`
}

// Select picks an option by id.
func Select(id string) Input { return Input{Kind: InputSelect, Value: id} }

// Query submits free text.
func Query(text string) Input { return Input{Kind: InputQuery, Value: text} }

// Back undoes the last forward transition.
func Back() Input { return Input{Kind: InputBack} }

// Reset restarts the wizard.
func Reset() Input { return Input{Kind: InputReset} }

// Validate checks that the kind is known.
func (i Input) Validate() error {
	switch i.Kind {
	case InputSelect, InputQuery, InputBack, InputReset:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownInput, i.Kind)
}

func (i Input) String() string {
	if i.Value == "" {
		return string(i.Kind)
	}
	return fmt.Sprintf("%s(%s)", i.Kind, i.Value)
}
