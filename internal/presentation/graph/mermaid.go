package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/navigator"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.Step
	CurrentNode  domain.Step
}

// OverlayFromState marks the history stack as visited and the active step as current.
func OverlayFromState(s *domain.State) *GraphOverlay {
	if s == nil {
		return nil
	}
	return &GraphOverlay{
		VisitedNodes: append([]domain.Step(nil), s.History...),
		CurrentNode:  s.Step,
	}
}

// GenerateMermaid produces a Mermaid flowchart of the step machine.
// It applies semantic styling:
// - Start: ((Circle))
// - Free text accepted: [/Parallelogram/]
// - Result: ([Stadium])
// - Default: [Rectangle]
// Back transitions are dotted. Overlay styles (Visited/Current) are applied if provided.
func GenerateMermaid(edges []navigator.Edge, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, step := range domain.Steps {
		opener, closer := "[", "]"
		switch {
		case step == domain.StepPlatformSelection:
			opener, closer = "((", "))"
		case step.IsResult():
			opener, closer = "([", "])"
		case acceptsQuery(step):
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(step), opener, step, closer)
	}

	for _, e := range edges {
		label := strings.ReplaceAll(e.Event, "\"", "'")
		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if e.Event == "back" {
			arrow = "-. back .->"
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(e.From), arrow, sanitizeMermaidID(e.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.Step]bool)
		for _, step := range overlay.VisitedNodes {
			if seen[step] || !step.Valid() || step == overlay.CurrentNode {
				continue
			}
			seen[step] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(step))
		}

		if overlay.CurrentNode.Valid() {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func acceptsQuery(step domain.Step) bool {
	switch step {
	case domain.StepPlatformAction, domain.StepVendorAction, domain.StepVendorCategoryBrowse:
		return true
	}
	return false
}

func sanitizeMermaidID(step domain.Step) string {
	s := strings.ReplaceAll(string(step), "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}
