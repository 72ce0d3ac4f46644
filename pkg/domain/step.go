package domain

// Step identifies a wizard screen.
type Step string

const (
	StepPlatformSelection     Step = "platform-selection"
	StepPlatformAction        Step = "platform-action"
	StepVendorSelection       Step = "vendor-selection"
	StepVendorAction          Step = "vendor-action"
	StepVendorCategoryBrowse  Step = "vendor-category-browse"
	StepVendorCategoryActions Step = "vendor-category-actions"
	StepResult                Step = "result"
	StepVendorCategoryResult  Step = "vendor-category-result"
)

// Steps lists every step in wizard order.
var Steps = []Step{
	StepPlatformSelection,
	StepPlatformAction,
	StepVendorSelection,
	StepVendorAction,
	StepVendorCategoryBrowse,
	StepVendorCategoryActions,
	StepResult,
	StepVendorCategoryResult,
}

// Valid reports whether s belongs to the closed set of steps.
func (s Step) Valid() bool {
	switch s {
	case StepPlatformSelection,
		StepPlatformAction,
		StepVendorSelection,
		StepVendorAction,
		StepVendorCategoryBrowse,
		StepVendorCategoryActions,
		StepResult,
		StepVendorCategoryResult:
		return true
	}
	return false
}

// IsResult reports whether s displays a command result.
func (s Step) IsResult() bool {
	return s == StepResult || s == StepVendorCategoryResult
}

func (s Step) String() string { return string(s) }
