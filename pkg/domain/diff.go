package domain

import "reflect"

// StateDiff represents the changes between two states.
// It is designed to be serialized to JSON for partial updates on the client.
type StateDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	Step *Step `json:"step,omitempty"`

	// Selections contains only changed fields. Cleared fields map to "".
	Selections map[string]string `json:"selections,omitempty"`

	Result *CommandResult `json:"result,omitempty"`

	// ResultCleared is set when a previously picked result was dropped.
	ResultCleared bool `json:"result_cleared,omitempty"`

	History *HistoryDelta `json:"history,omitempty"`
}

// HistoryDelta represents changes to the history stack.
type HistoryDelta struct {
	Pushed []Step `json:"pushed,omitempty"`
	Popped int    `json:"popped,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState (initial load).
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}
	if oldState == nil {
		oldState = &State{}
	}

	diff := &StateDiff{SessionID: newState.SessionID}

	if oldState.Step != newState.Step {
		step := newState.Step
		diff.Step = &step
	}

	diff.Selections = diffSelections(oldState, newState)

	switch {
	case newState.Result != nil && !reflect.DeepEqual(oldState.Result, newState.Result):
		r := newState.Result.Clone()
		diff.Result = &r
	case newState.Result == nil && oldState.Result != nil:
		diff.ResultCleared = true
	}

	diff.History = diffHistory(oldState.History, newState.History)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffSelections(old, new *State) map[string]string {
	fields := []struct {
		key      string
		old, new string
	}{
		{"platform", old.Platform, new.Platform},
		{"platform_action", old.PlatformAction, new.PlatformAction},
		{"vendor", old.Vendor, new.Vendor},
		{"vendor_action", old.VendorAction, new.VendorAction},
		{"vendor_category_label", old.VendorCategoryLabel, new.VendorCategoryLabel},
	}

	delta := make(map[string]string)
	for _, f := range fields {
		if f.old != f.new {
			delta[f.key] = f.new
		}
	}
	if len(delta) == 0 {
		return nil
	}
	return delta
}

// diffHistory finds the common prefix and reports what was popped and pushed after it.
func diffHistory(old, new []Step) *HistoryDelta {
	common := 0
	for common < len(old) && common < len(new) && old[common] == new[common] {
		common++
	}
	if common == len(old) && common == len(new) {
		return nil
	}
	delta := &HistoryDelta{Popped: len(old) - common}
	if len(new) > common {
		delta.Pushed = append([]Step(nil), new[common:]...)
	}
	return delta
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return d.Step == nil &&
		len(d.Selections) == 0 &&
		d.Result == nil &&
		!d.ResultCleared &&
		d.History == nil
}
