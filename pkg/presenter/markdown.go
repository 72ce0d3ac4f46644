package presenter

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Markdown renders a screen as a Markdown document. Options are numbered from
// 1 so text frontends can accept the index as input.
func Markdown(s domain.Screen) string {
	var b strings.Builder

	if r := s.Result; r != nil {
		writeResult(&b, r)
	}

	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if s.Body != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Body)
	}
	if s.Hint != "" {
		fmt.Fprintf(&b, "_%s_\n\n", s.Hint)
	}

	for i, o := range s.Options {
		line := fmt.Sprintf("%d. %s **%s**", i+1, o.Icon, o.Label)
		if o.Icon == "" {
			line = fmt.Sprintf("%d. **%s**", i+1, o.Label)
		}
		if o.Description != "" {
			line += " - " + o.Description
		}
		b.WriteString(line + "\n")
	}
	if len(s.Options) > 0 {
		b.WriteString("\n")
	}

	if s.AcceptsQuery {
		fmt.Fprintf(&b, "> %s\n\n", s.QueryPrompt)
	}
	if s.CanGoBack {
		b.WriteString("_Type `back` to return or `restart` to start over._\n")
	}
	return b.String()
}

// CommandMarkdown renders just the command card.
func CommandMarkdown(r domain.CommandResult) string {
	var b strings.Builder
	writeResult(&b, &r)
	return b.String()
}

func writeResult(b *strings.Builder, r *domain.CommandResult) {
	if r.Title != "" {
		fmt.Fprintf(b, "## %s\n\n", r.Title)
	}
	fmt.Fprintf(b, "```\n%s\n```\n\n", r.Command)
	if r.Explanation != "" {
		fmt.Fprintf(b, "%s\n\n", r.Explanation)
	}
	if r.Warning != "" {
		fmt.Fprintf(b, "> ⚠️ **Warning:** %s\n\n", r.Warning)
	}
	if r.Example != "" {
		fmt.Fprintf(b, "**Example**\n\n```\n%s\n```\n\n", r.Example)
	}
	if r.Advanced != "" {
		fmt.Fprintf(b, "### ⚡ Advanced Alternatives\n\n%s\n\n", r.Advanced)
	}
	writeList(b, "Variations", r.Variations)
	writeList(b, "Troubleshooting", r.Troubleshooting)
	if t := r.Related; t != nil {
		fmt.Fprintf(b, "### 📘 Related: %s\n\n%s\n\n", t.Title, t.Reply())
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
