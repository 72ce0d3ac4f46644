package presenter

import (
	"fmt"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// iosVendors format their commands as IOS configuration blocks.
var iosVendors = map[string]bool{"cisco": true}

// PlatformResult synthesizes the command card for an OS platform selection.
// A category title yields its first suggestion with the rest as variations;
// anything else is treated as free text.
func PlatformResult(p domain.Platform, selection string) domain.CommandResult {
	if c, ok := p.Category(selection); ok && len(c.Suggestions) > 0 {
		variations := make([]string, 0, len(c.Suggestions)-1)
		for _, s := range c.Suggestions[1:] {
			variations = append(variations, fmt.Sprintf("%s: %s", s.Label, s.Command))
		}
		return domain.CommandResult{
			Title:           c.Title,
			Command:         c.Suggestions[0].Command,
			Explanation:     fmt.Sprintf("This is a %s command for %s.", selection, p.Name),
			Variations:      variations,
			Troubleshooting: append([]string(nil), p.Troubleshooting...),
		}
	}

	return domain.CommandResult{
		Title:           selection,
		Command:         "# Command for: " + selection,
		Explanation:     fmt.Sprintf("Please refer to %s documentation for specific commands related to: %s", p.Name, selection),
		Troubleshooting: append([]string(nil), p.FallbackTroubleshooting...),
		Fallback:        true,
	}
}

// VendorResult synthesizes the command card for a vendor action selection.
func VendorResult(v domain.Vendor, selection string) domain.CommandResult {
	if a, ok := v.Action(selection); ok {
		r := domain.ResultFromAction(a)
		r.Command = vendorCommand(v, r.Command)
		r.Troubleshooting = []string{
			fmt.Sprintf("Confirm syntax for %s model you're using", v.Name),
			"Consult vendor documentation for variations",
			"Backup config before making changes",
		}
		return r
	}

	return domain.CommandResult{
		Title:       selection,
		Command:     "# " + selection,
		Explanation: fmt.Sprintf("Command syntax for: %s on %s", selection, v.Name),
		Troubleshooting: []string{
			fmt.Sprintf("Check %s documentation for exact syntax", v.Name),
			"Device models may have variations",
			"Always backup before configuration changes",
		},
		Fallback: true,
	}
}

func vendorCommand(v domain.Vendor, command string) string {
	if iosVendors[v.ID] {
		return FormatIOS(command)
	}
	return command
}

// Relate attaches the catalog topic answering a free-text result. vendor is
// the vendor id of the result, empty for OS platforms. Catalog hits and
// questions without a matching topic are returned unchanged.
func Relate(c ports.Catalog, r domain.CommandResult, query, vendor string) domain.CommandResult {
	if !r.Fallback {
		return r
	}
	if m := c.Search(query, vendor); m.Found() {
		r.Related = m.Topic
	}
	return r
}
