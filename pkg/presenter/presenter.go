package presenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// UntaggedHint marks category listings built from label matches or the first
// vendor actions rather than from category tags.
const UntaggedHint = "No commands are tagged for this category; showing related ones."

// Presenter turns a wizard state into the screen to display.
type Presenter struct {
	catalog ports.Catalog
}

// New creates a Presenter over catalog.
func New(catalog ports.Catalog) *Presenter {
	return &Presenter{catalog: catalog}
}

// Render returns the screen for s. ok is false when s lacks a selection its
// step requires; callers keep the previous screen on display.
func (p *Presenter) Render(_ context.Context, s *domain.State) (domain.Screen, bool) {
	if s == nil {
		return domain.Screen{}, false
	}

	var (
		screen domain.Screen
		ok     bool
	)
	switch s.Step {
	case domain.StepPlatformSelection:
		screen, ok = p.platformSelection(), true
	case domain.StepPlatformAction:
		screen, ok = p.platformAction(s)
	case domain.StepVendorSelection:
		screen, ok = p.vendorSelection(s)
	case domain.StepVendorAction:
		screen, ok = p.vendorAction(s)
	case domain.StepVendorCategoryBrowse:
		screen, ok = p.categoryBrowse(s)
	case domain.StepVendorCategoryActions:
		screen, ok = p.categoryActions(s)
	case domain.StepResult:
		if s.Vendor != "" {
			screen, ok = p.vendorResult(s)
		} else {
			screen, ok = p.platformResult(s)
		}
	case domain.StepVendorCategoryResult:
		screen, ok = p.categoryResult(s)
	}
	if !ok {
		return domain.Screen{}, false
	}

	screen.Step = s.Step
	screen.CanGoBack = len(s.History) > 0
	if screen.Options == nil {
		screen.Options = []domain.Option{}
	}
	return screen, true
}

func (p *Presenter) platformSelection() domain.Screen {
	var opts []domain.Option
	for _, pl := range p.catalog.Platforms() {
		opts = append(opts, domain.Option{ID: pl.ID, Label: pl.Name, Description: pl.Description, Icon: pl.Icon})
	}
	for _, d := range domain.DeviceTypes {
		opts = append(opts, domain.Option{
			ID:          string(d),
			Label:       d.Label(),
			Description: fmt.Sprintf("%s vendors and device commands", d.Label()),
			Icon:        d.Icon(),
		})
	}
	return domain.Screen{
		Title:   "🔧 Command Assist",
		Body:    "Cipher here. I'll help you find the right command.",
		Hint:    "First, tell me which platform or device type you need commands for.",
		Options: opts,
	}
}

func (p *Presenter) platformAction(s *domain.State) (domain.Screen, bool) {
	pl, ok := p.catalog.Platform(s.Platform)
	if !ok {
		return domain.Screen{}, false
	}

	opts := make([]domain.Option, 0, len(pl.Categories))
	for _, c := range pl.Categories {
		opts = append(opts, domain.Option{
			ID:          c.Title,
			Label:       c.Title,
			Description: fmt.Sprintf("%d commands", len(c.Suggestions)),
			Icon:        "📋",
		})
	}
	return domain.Screen{
		Title:        pl.Name + " Commands",
		Body:         fmt.Sprintf("What do you need to do on %s?", pl.Name),
		Hint:         "Choose a category or enter a command topic.",
		Options:      opts,
		AcceptsQuery: true,
		QueryPrompt:  "Or enter a command topic (e.g., 'show network config')",
	}, true
}

func (p *Presenter) vendorSelection(s *domain.State) (domain.Screen, bool) {
	d, ok := domain.ParseDeviceType(s.Platform)
	if !ok {
		return domain.Screen{}, false
	}

	var opts []domain.Option
	for _, v := range p.catalog.Vendors() {
		opts = append(opts, domain.Option{ID: v.ID, Label: v.Name, Description: v.Description, Icon: v.Icon})
	}
	return domain.Screen{
		Title:   d.Label() + " Vendors",
		Body:    fmt.Sprintf("Which vendor is your %s?", strings.ToLower(d.Label())),
		Hint:    "Select from common vendors or choose 'Other'.",
		Options: opts,
	}, true
}

func (p *Presenter) vendorAction(s *domain.State) (domain.Screen, bool) {
	v, ok := p.catalog.Vendor(s.Vendor)
	if !ok {
		return domain.Screen{}, false
	}

	opts := make([]domain.Option, 0, len(v.Actions))
	for _, a := range v.Actions {
		opts = append(opts, actionOption(a, "⚙️"))
	}
	hint := "Select from available actions or enter a custom query."
	if len(v.Devices) > 0 {
		hint += " Devices: " + strings.Join(v.Devices, ", ") + "."
	}
	return domain.Screen{
		Title:        v.Name + " Actions",
		Body:         fmt.Sprintf("What do you want to do on a %s device?", v.Name),
		Hint:         hint,
		Options:      opts,
		AcceptsQuery: true,
		QueryPrompt:  "Or enter what you want to do (e.g., 'configure interface')",
	}, true
}

func (p *Presenter) categoryBrowse(s *domain.State) (domain.Screen, bool) {
	v, ok := p.catalog.Vendor(s.Vendor)
	if !ok || !v.HasCategories() {
		return domain.Screen{}, false
	}

	opts := make([]domain.Option, 0, len(v.Categories))
	for _, c := range v.Categories {
		opts = append(opts, domain.Option{ID: c.Key, Label: c.Title, Description: c.Summary, Icon: "📚"})
	}
	body := v.ExplorationPrompt
	if body == "" {
		body = fmt.Sprintf("What aspect of %s would you like to explore?", v.Name)
	}
	return domain.Screen{
		Title:        v.Name + " - Advanced Enterprise Networking",
		Body:         body,
		Hint:         "Each category includes production-grade commands with advanced alternatives and best practices.",
		Options:      opts,
		AcceptsQuery: true,
		QueryPrompt:  "Or describe a topic to explore",
	}, true
}

func (p *Presenter) categoryActions(s *domain.State) (domain.Screen, bool) {
	v, ok := p.catalog.Vendor(s.Vendor)
	if !ok {
		return domain.Screen{}, false
	}

	key := catalog.CategoryKey(v, s.VendorAction)
	title, summary := s.VendorCategoryLabel, ""
	if c, ok := v.Category(key); ok {
		title, summary = c.Title, c.Summary
	}
	if title == "" {
		title = key
	}

	actions, tier := catalog.CategoryActions(v, key)
	opts := make([]domain.Option, 0, len(actions))
	for _, a := range actions {
		opts = append(opts, actionOption(a, "⚡"))
	}
	hint := summary
	if tier != catalog.TierExact {
		hint = strings.TrimSpace(summary + " " + UntaggedHint)
	}
	return domain.Screen{
		Title:   title,
		Body:    "Select a command to explore advanced alternatives and best practices",
		Hint:    hint,
		Options: opts,
	}, true
}

func (p *Presenter) platformResult(s *domain.State) (domain.Screen, bool) {
	pl, ok := p.catalog.Platform(s.Platform)
	if !ok || s.PlatformAction == "" {
		return domain.Screen{}, false
	}

	r := Relate(p.catalog, PlatformResult(pl, s.PlatformAction), s.PlatformAction, "")
	return domain.Screen{
		Title: "Need another command?",
		Body:  "Pick another option below or try a different platform.",
		Options: []domain.Option{
			{ID: domain.OptionAnotherAction, Label: "Try another action", Icon: "🔄"},
			{ID: domain.OptionChangePlatform, Label: "Change platform", Icon: "🔀"},
			{ID: domain.OptionRestart, Label: "Start over", Icon: "🔄"},
		},
		Result: &r,
	}, true
}

func (p *Presenter) vendorResult(s *domain.State) (domain.Screen, bool) {
	v, ok := p.catalog.Vendor(s.Vendor)
	if !ok || s.VendorAction == "" {
		return domain.Screen{}, false
	}

	r := Relate(p.catalog, VendorResult(v, s.VendorAction), s.VendorAction, v.ID)
	return domain.Screen{
		Title: "Pick another option.",
		Body:  "Continue exploring or start a new query.",
		Options: []domain.Option{
			{ID: domain.OptionAnotherAction, Label: "Try another action", Icon: "🔄"},
			{ID: domain.OptionChangeVendor, Label: "Change vendor", Icon: "🔀"},
			{ID: domain.OptionRestart, Label: "Start over", Icon: "🔄"},
		},
		Result: &r,
	}, true
}

func (p *Presenter) categoryResult(s *domain.State) (domain.Screen, bool) {
	if s.Result == nil {
		return domain.Screen{}, false
	}

	r := s.Result.Clone()
	if v, ok := p.catalog.Vendor(s.Vendor); ok {
		r.Command = vendorCommand(v, r.Command)
	}
	return domain.Screen{
		Title: r.Title,
		Body:  "Advanced Enterprise Command",
		Hint:  "What's next?",
		Options: []domain.Option{
			{ID: domain.OptionExploreAnother, Label: "Explore another command", Icon: "⚡"},
			{ID: domain.OptionDifferentCategory, Label: "Choose different category", Icon: "📚"},
			{ID: domain.OptionRestart, Label: "Start over", Icon: "🔄"},
		},
		Result: &r,
	}, true
}

func actionOption(a domain.Action, icon string) domain.Option {
	desc := a.Description
	if desc == "" {
		desc = a.Explanation
	}
	return domain.Option{ID: a.Label, Label: a.Label, Description: desc, Icon: icon}
}
