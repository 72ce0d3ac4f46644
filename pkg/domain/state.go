package domain

import "fmt"

// State represents the current snapshot of a wizard session.
// An empty string means "no selection".
type State struct {
	// SessionID identifies the session on multi-user surfaces (HTTP).
	SessionID string `json:"session_id,omitempty"`

	// Step is the active screen.
	Step Step `json:"step"`

	// Platform holds an OS platform id or a device type.
	Platform string `json:"platform,omitempty"`

	// PlatformAction is the chosen category title or free text on an OS platform.
	PlatformAction string `json:"platform_action,omitempty"`

	// Vendor is the chosen network vendor id.
	Vendor string `json:"vendor,omitempty"`

	// VendorAction holds an action label, a category key or free text,
	// depending on the path that set it.
	VendorAction string `json:"vendor_action,omitempty"`

	// VendorCategoryLabel is the display title of the browsed vendor category.
	VendorCategoryLabel string `json:"vendor_category_label,omitempty"`

	// Result is the action picked from a vendor category.
	Result *CommandResult `json:"result,omitempty"`

	// History is the back-navigation stack. The top is the step to return to.
	History []Step `json:"history"`
}

// NewState creates a clean state at the first step.
func NewState() *State {
	return &State{
		Step:    StepPlatformSelection,
		History: []Step{},
	}
}

// Reset returns the state to its initial value, keeping the session id.
func (s *State) Reset() {
	id := s.SessionID
	*s = *NewState()
	s.SessionID = id
}

// Snapshot returns a deep copy of the state.
func (s *State) Snapshot() *State {
	if s == nil {
		return nil
	}
	c := *s
	c.History = make([]Step, len(s.History))
	copy(c.History, s.History)
	if s.Result != nil {
		r := s.Result.Clone()
		c.Result = &r
	}
	return &c
}

// Push records from as the step to return to.
func (s *State) Push(from Step) {
	s.History = append(s.History, from)
}

// Pop removes and returns the top of the history stack.
// It returns false when the stack is empty.
func (s *State) Pop() (Step, bool) {
	if len(s.History) == 0 {
		return "", false
	}
	top := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	return top, true
}

// Unwind pops entries until target has been popped.
// It returns false and leaves the stack untouched when target is not on it.
func (s *State) Unwind(target Step) bool {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i] == target {
			s.History = s.History[:i]
			return true
		}
	}
	return false
}

// ClearVendor drops the vendor and everything chosen after it.
func (s *State) ClearVendor() {
	s.Vendor = ""
	s.ClearVendorAction()
}

// ClearVendorAction drops the vendor action, category label and picked result.
func (s *State) ClearVendorAction() {
	s.VendorAction = ""
	s.VendorCategoryLabel = ""
	s.Result = nil
}

// Validate checks that the step and every history entry are known steps.
// States decoded from clients must pass it before reaching the navigator.
func (s *State) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidState)
	}
	if !s.Step.Valid() {
		return fmt.Errorf("%w: unknown step %q", ErrInvalidState, s.Step)
	}
	for i, h := range s.History {
		if !h.Valid() {
			return fmt.Errorf("%w: unknown step %q at history[%d]", ErrInvalidState, h, i)
		}
	}
	return nil
}
