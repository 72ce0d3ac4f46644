package domain

// DeviceType is a network device class offered next to the OS platforms.
type DeviceType string

const (
	DeviceFirewall DeviceType = "firewall"
	DeviceRouter   DeviceType = "router"
	DeviceSwitch   DeviceType = "switch"
)

// DeviceTypes lists the device classes in display order.
var DeviceTypes = []DeviceType{DeviceFirewall, DeviceRouter, DeviceSwitch}

// ParseDeviceType returns the device type named by id.
func ParseDeviceType(id string) (DeviceType, bool) {
	for _, d := range DeviceTypes {
		if string(d) == id {
			return d, true
		}
	}
	return "", false
}

// Label returns the display name of the device class.
func (d DeviceType) Label() string {
	switch d {
	case DeviceFirewall:
		return "Firewall"
	case DeviceRouter:
		return "Router"
	case DeviceSwitch:
		return "Switch"
	}
	return string(d)
}

// Icon returns the option glyph of the device class.
func (d DeviceType) Icon() string {
	switch d {
	case DeviceFirewall:
		return "🛡️"
	case DeviceRouter:
		return "🔄"
	case DeviceSwitch:
		return "🔌"
	}
	return ""
}

// Suggestion is one command offered inside a platform category.
type Suggestion struct {
	Label   string `json:"label" mapstructure:"label"`
	Command string `json:"command" mapstructure:"command"`
}

// Category groups suggestions on an OS platform.
type Category struct {
	Key         string       `json:"key" mapstructure:"key"`
	Title       string       `json:"title" mapstructure:"title"`
	Suggestions []Suggestion `json:"suggestions" mapstructure:"suggestions"`
}

// Platform is an operating system with its command categories.
type Platform struct {
	ID          string     `json:"id" mapstructure:"id"`
	Name        string     `json:"name" mapstructure:"name"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Icon        string     `json:"icon,omitempty" mapstructure:"icon"`
	Categories  []Category `json:"categories" mapstructure:"categories"`

	// Troubleshooting tips shown with a matched category.
	Troubleshooting []string `json:"troubleshooting,omitempty" mapstructure:"troubleshooting"`
	// FallbackTroubleshooting tips shown with a free-text result.
	FallbackTroubleshooting []string `json:"fallback_troubleshooting,omitempty" mapstructure:"fallback_troubleshooting"`
}

// Category returns the category whose title equals title.
func (p Platform) Category(title string) (Category, bool) {
	for _, c := range p.Categories {
		if c.Title == title {
			return c, true
		}
	}
	return Category{}, false
}

// Action is a single vendor command with its metadata.
type Action struct {
	Label       string `json:"label" mapstructure:"label"`
	Command     string `json:"command" mapstructure:"command"`
	Explanation string `json:"explanation,omitempty" mapstructure:"explanation"`
	Warning     string `json:"warning,omitempty" mapstructure:"warning"`
	Example     string `json:"example,omitempty" mapstructure:"example"`
	Advanced    string `json:"advanced,omitempty" mapstructure:"advanced"`
	Category    string `json:"category,omitempty" mapstructure:"category"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// VendorCategory is a browsable topic within a vendor's actions.
type VendorCategory struct {
	Key     string `json:"key" mapstructure:"key"`
	Title   string `json:"title" mapstructure:"title"`
	Summary string `json:"summary,omitempty" mapstructure:"summary"`
}

// Vendor is a network equipment vendor with its actions.
type Vendor struct {
	ID                string           `json:"id" mapstructure:"id"`
	Name              string           `json:"name" mapstructure:"name"`
	Description       string           `json:"description,omitempty" mapstructure:"description"`
	Icon              string           `json:"icon,omitempty" mapstructure:"icon"`
	Devices           []string         `json:"devices,omitempty" mapstructure:"devices"`
	ExplorationPrompt string           `json:"exploration_prompt,omitempty" mapstructure:"exploration_prompt"`
	Categories        []VendorCategory `json:"categories,omitempty" mapstructure:"categories"`
	Actions           []Action         `json:"actions" mapstructure:"actions"`
}

// HasCategories reports whether the vendor is explored by category.
func (v Vendor) HasCategories() bool {
	return len(v.Categories) > 0
}

// Action returns the action labelled label.
func (v Vendor) Action(label string) (Action, bool) {
	for _, a := range v.Actions {
		if a.Label == label {
			return a, true
		}
	}
	return Action{}, false
}

// Category returns the vendor category with the given key.
func (v Vendor) Category(key string) (VendorCategory, bool) {
	for _, c := range v.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return VendorCategory{}, false
}
