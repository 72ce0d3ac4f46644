package navigator

import "github.com/aretw0/cmdassist/pkg/domain"

// Edge is one forward or backward transition of the step machine.
type Edge struct {
	From  domain.Step `json:"from"`
	To    domain.Step `json:"to"`
	Event string      `json:"event"`
}

// Edges lists every transition Navigate can take, excluding the global reset
// that is accepted from any step.
func Edges() []Edge {
	return []Edge{
		{domain.StepPlatformSelection, domain.StepPlatformAction, "select platform"},
		{domain.StepPlatformSelection, domain.StepVendorSelection, "select device type"},

		{domain.StepPlatformAction, domain.StepResult, "select category / query"},
		{domain.StepPlatformAction, domain.StepPlatformSelection, "back"},

		{domain.StepVendorSelection, domain.StepVendorCategoryBrowse, "select vendor with categories"},
		{domain.StepVendorSelection, domain.StepVendorAction, "select vendor"},
		{domain.StepVendorSelection, domain.StepPlatformSelection, "back"},

		{domain.StepVendorAction, domain.StepResult, "select action / query"},
		{domain.StepVendorAction, domain.StepVendorSelection, "back"},

		{domain.StepVendorCategoryBrowse, domain.StepVendorCategoryActions, "select category / query"},
		{domain.StepVendorCategoryBrowse, domain.StepVendorSelection, "back"},

		{domain.StepVendorCategoryActions, domain.StepVendorCategoryResult, "select action"},
		{domain.StepVendorCategoryActions, domain.StepVendorCategoryBrowse, "back"},

		{domain.StepResult, domain.StepPlatformAction, domain.OptionAnotherAction},
		{domain.StepResult, domain.StepVendorAction, domain.OptionAnotherAction},
		{domain.StepResult, domain.StepPlatformSelection, domain.OptionChangePlatform},
		{domain.StepResult, domain.StepVendorSelection, domain.OptionChangeVendor},
		{domain.StepResult, domain.StepPlatformSelection, domain.OptionRestart},

		{domain.StepVendorCategoryResult, domain.StepVendorCategoryActions, domain.OptionExploreAnother},
		{domain.StepVendorCategoryResult, domain.StepVendorCategoryBrowse, domain.OptionDifferentCategory},
		{domain.StepVendorCategoryResult, domain.StepPlatformSelection, domain.OptionRestart},
	}
}
