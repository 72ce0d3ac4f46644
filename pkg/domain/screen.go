package domain

// Option is a selectable entry on a screen.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CommandResult is the command card shown on result screens.
type CommandResult struct {
	Title           string   `json:"title"`
	Command         string   `json:"command"`
	Explanation     string   `json:"explanation,omitempty"`
	Warning         string   `json:"warning,omitempty"`
	Example         string   `json:"example,omitempty"`
	Advanced        string   `json:"advanced,omitempty"`
	Variations      []string `json:"variations,omitempty"`
	Troubleshooting []string `json:"troubleshooting,omitempty"`

	// Fallback is true when the result was synthesized from free text.
	Fallback bool `json:"fallback,omitempty"`

	// Related is the library topic answering the free text, if any.
	Related *Topic `json:"related,omitempty"`
}

// Clone returns a deep copy of the result.
func (r CommandResult) Clone() CommandResult {
	c := r
	c.Variations = append([]string(nil), r.Variations...)
	c.Troubleshooting = append([]string(nil), r.Troubleshooting...)
	if r.Related != nil {
		t := r.Related.Clone()
		c.Related = &t
	}
	return c
}

// ResultFromAction builds the card for a catalog action.
func ResultFromAction(a Action) CommandResult {
	return CommandResult{
		Title:       a.Label,
		Command:     a.Command,
		Explanation: a.Explanation,
		Warning:     a.Warning,
		Example:     a.Example,
		Advanced:    a.Advanced,
	}
}

// Screen is the display record for one step.
type Screen struct {
	Step  Step   `json:"step"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Hint  string `json:"hint,omitempty"`

	Options []Option `json:"options"`

	// AcceptsQuery marks screens where free text is a valid selection.
	AcceptsQuery bool   `json:"accepts_query,omitempty"`
	QueryPrompt  string `json:"query_prompt,omitempty"`

	CanGoBack bool `json:"can_go_back"`

	Result *CommandResult `json:"result,omitempty"`
}

// Option returns the option with the given id.
func (s Screen) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Result option ids.
const (
	OptionAnotherAction     = "another-action"
	OptionChangePlatform    = "change-platform"
	OptionChangeVendor      = "change-vendor"
	OptionRestart           = "restart"
	OptionExploreAnother    = "explore-another"
	OptionDifferentCategory = "different-category"
)
