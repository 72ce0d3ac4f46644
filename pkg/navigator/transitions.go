package navigator

import (
	"fmt"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
)

func (n *Navigator) selectPlatform(s *domain.State, in domain.Input) (string, bool) {
	if in.Kind != domain.InputSelect {
		return "", false
	}
	if p, ok := n.catalog.Platform(in.Value); ok {
		s.Push(s.Step)
		s.Platform = p.ID
		s.PlatformAction = ""
		s.Step = domain.StepPlatformAction
		return fmt.Sprintf("Selected %s. Now choose what you need to do.", p.Name), true
	}
	if d, ok := domain.ParseDeviceType(in.Value); ok {
		s.Push(s.Step)
		s.Platform = string(d)
		s.ClearVendor()
		s.Step = domain.StepVendorSelection
		return fmt.Sprintf("Selected %s device. Now choose a vendor.", d.Label()), true
	}
	return "", false
}

func (n *Navigator) platformAction(s *domain.State, in domain.Input) (string, bool) {
	p, ok := n.catalog.Platform(s.Platform)
	if !ok {
		return "", false
	}

	var narration string
	switch in.Kind {
	case domain.InputSelect:
		if _, ok := p.Category(in.Value); !ok {
			return "", false
		}
		narration = fmt.Sprintf("Showing %s for %s.", in.Value, p.Name)
	case domain.InputQuery:
		narration = fmt.Sprintf("Searching for commands about %s.", in.Value)
	default:
		return "", false
	}

	s.Push(s.Step)
	s.PlatformAction = in.Value
	s.Step = domain.StepResult
	return narration, true
}

func (n *Navigator) selectVendor(s *domain.State, in domain.Input) (string, bool) {
	if in.Kind != domain.InputSelect {
		return "", false
	}
	v, ok := n.catalog.Vendor(in.Value)
	if !ok {
		return "", false
	}

	s.Push(s.Step)
	s.Vendor = v.ID
	s.ClearVendorAction()
	if v.HasCategories() {
		s.Step = domain.StepVendorCategoryBrowse
		return fmt.Sprintf("Selected %s. What would you like to explore?", v.Name), true
	}
	s.Step = domain.StepVendorAction
	return fmt.Sprintf("Selected %s. Now choose an action.", v.Name), true
}

func (n *Navigator) vendorAction(s *domain.State, in domain.Input) (string, bool) {
	v, ok := n.catalog.Vendor(s.Vendor)
	if !ok {
		return "", false
	}

	var narration string
	switch in.Kind {
	case domain.InputSelect:
		if _, ok := v.Action(in.Value); !ok {
			return "", false
		}
		narration = fmt.Sprintf("Showing command for %s.", in.Value)
	case domain.InputQuery:
		narration = fmt.Sprintf("Searching for %s on %s.", in.Value, v.Name)
	default:
		return "", false
	}

	s.Push(s.Step)
	s.VendorAction = in.Value
	s.Step = domain.StepResult
	return narration, true
}

func (n *Navigator) browseCategory(s *domain.State, in domain.Input) (string, bool) {
	v, ok := n.catalog.Vendor(s.Vendor)
	if !ok {
		return "", false
	}

	var key, label string
	switch in.Kind {
	case domain.InputSelect:
		c, ok := v.Category(in.Value)
		if !ok {
			return "", false
		}
		key, label = c.Key, c.Title
	case domain.InputQuery:
		key, label = in.Value, in.Value
	default:
		return "", false
	}

	s.Push(s.Step)
	s.VendorAction = key
	s.VendorCategoryLabel = label
	s.Result = nil
	s.Step = domain.StepVendorCategoryActions
	return fmt.Sprintf("Exploring %s. Here are the advanced commands.", label), true
}

func (n *Navigator) categoryAction(s *domain.State, in domain.Input) (string, bool) {
	if in.Kind != domain.InputSelect {
		return "", false
	}
	v, ok := n.catalog.Vendor(s.Vendor)
	if !ok {
		return "", false
	}

	actions, _ := catalog.CategoryActions(v, catalog.CategoryKey(v, s.VendorAction))
	for _, a := range actions {
		if a.Label != in.Value {
			continue
		}
		r := domain.ResultFromAction(a)
		s.Push(s.Step)
		s.Result = &r
		s.Step = domain.StepVendorCategoryResult
		return fmt.Sprintf("Showing %s with advanced alternatives.", a.Label), true
	}
	return "", false
}

func (n *Navigator) resultOption(s *domain.State, in domain.Input) (string, bool) {
	if in.Kind != domain.InputSelect {
		return "", false
	}
	fromVendor := s.Vendor != ""

	switch in.Value {
	case domain.OptionAnotherAction:
		if _, ok := n.back(s); !ok {
			return "", false
		}
		if fromVendor {
			return "Let's find another action.", true
		}
		return "Let's find another command.", true
	case domain.OptionChangePlatform:
		if fromVendor {
			return "", false
		}
		s.Reset()
		return "Choose a new platform.", true
	case domain.OptionChangeVendor:
		if !fromVendor || !s.Unwind(domain.StepVendorSelection) {
			return "", false
		}
		s.ClearVendor()
		s.Step = domain.StepVendorSelection
		return "Choose a new vendor.", true
	case domain.OptionRestart:
		s.Reset()
		return "Starting over.", true
	}
	return "", false
}

func (n *Navigator) categoryResultOption(s *domain.State, in domain.Input) (string, bool) {
	if in.Kind != domain.InputSelect {
		return "", false
	}

	switch in.Value {
	case domain.OptionExploreAnother:
		if _, ok := n.back(s); !ok {
			return "", false
		}
		return "Here are more commands in this category.", true
	case domain.OptionDifferentCategory:
		if !s.Unwind(domain.StepVendorCategoryBrowse) {
			return "", false
		}
		s.ClearVendorAction()
		s.Step = domain.StepVendorCategoryBrowse
		return "Back to category selection.", true
	case domain.OptionRestart:
		s.Reset()
		return "Starting over.", true
	}
	return "", false
}

// back pops one history entry and clears what was chosen on the way out of it.
func (n *Navigator) back(s *domain.State) (string, bool) {
	target, ok := s.Pop()
	if !ok {
		return "", false
	}

	switch s.Step {
	case domain.StepPlatformAction:
		s.Platform = ""
		s.PlatformAction = ""
	case domain.StepVendorSelection:
		s.Platform = ""
		s.ClearVendor()
	case domain.StepVendorAction, domain.StepVendorCategoryBrowse:
		s.ClearVendor()
	case domain.StepVendorCategoryActions:
		s.ClearVendorAction()
	case domain.StepResult:
		if s.Vendor != "" {
			s.VendorAction = ""
			s.VendorCategoryLabel = ""
		} else {
			s.PlatformAction = ""
		}
	case domain.StepVendorCategoryResult:
		s.Result = nil
	}
	s.Step = target

	switch target {
	case domain.StepPlatformSelection:
		return "Back to platform selection.", true
	case domain.StepVendorSelection:
		return "Back to vendor selection.", true
	case domain.StepVendorCategoryBrowse:
		return "Back to category selection.", true
	case domain.StepVendorCategoryActions:
		return fmt.Sprintf("Back to %s.", s.VendorCategoryLabel), true
	}
	return "Back to action selection.", true
}
