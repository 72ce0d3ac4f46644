package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aretw0/cmdassist/internal/config"
	"github.com/aretw0/cmdassist/internal/presentation/graph"
	"github.com/aretw0/cmdassist/internal/presentation/tui"
	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/navigator"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func loadCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFile(cfg.Catalog.Path)
	}
	return catalog.Default()
}

// ListCatalog prints every platform and vendor as a table.
func ListCatalog(w io.Writer, cfg config.Config) error {
	store, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "ID", "NAME", "ENTRIES", "DEVICES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, p := range store.Platforms() {
		t.Row("platform", p.ID, p.Name, strconv.Itoa(len(p.Categories)), "")
	}
	for _, v := range store.Vendors() {
		t.Row("vendor", v.ID, v.Name, strconv.Itoa(len(v.Actions)), strings.Join(v.Devices, ", "))
	}
	for _, tp := range store.Topics() {
		t.Row("topic", tp.ID, tp.Title, strconv.Itoa(len(tp.Blocks)), tp.Vendor)
	}

	_, err = fmt.Fprintln(w, t.String())
	return err
}

// ValidateCatalog loads and checks a catalog file.
func ValidateCatalog(w io.Writer, path string) error {
	var (
		store *catalog.Store
		err   error
	)
	if path == "" {
		store, err = catalog.Default()
		path = "embedded catalog"
	} else {
		store, err = catalog.LoadFile(path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ %s is valid: %d platforms, %d vendors, %d topics\n",
		path, len(store.Platforms()), len(store.Vendors()), len(store.Topics()))
	return nil
}

// ShowCatalog prints the categories of a platform or the actions of a vendor.
func ShowCatalog(w io.Writer, cfg config.Config, id string) error {
	store, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if p, ok := store.Platform(id); ok {
		fmt.Fprintf(&sb, "# %s %s\n\n", p.Icon, p.Name)
		for _, c := range p.Categories {
			fmt.Fprintf(&sb, "## %s\n\n", c.Title)
			for _, s := range c.Suggestions {
				fmt.Fprintf(&sb, "- %s: `%s`\n", s.Label, s.Command)
			}
			sb.WriteString("\n")
		}
	} else if v, ok := store.Vendor(id); ok {
		fmt.Fprintf(&sb, "# %s %s\n\n", v.Icon, v.Name)
		if len(v.Actions) == 0 {
			sb.WriteString("No catalogued actions: free-text lookups only.\n")
		}
		for _, a := range v.Actions {
			fmt.Fprintf(&sb, "- **%s**: `%s`\n", a.Label, a.Command)
		}
	} else {
		return fmt.Errorf("%q is neither a platform nor a vendor", id)
	}

	out, err := tui.NewRenderer()(sb.String())
	if err != nil {
		out = sb.String()
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// SearchCatalog answers a free-text question from the topic library.
// A question with no usable topic is not an error: the reply says so.
func SearchCatalog(w io.Writer, cfg config.Config, query, vendor string) error {
	store, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	m := store.Search(query, vendor)
	md := m.Reply
	if m.Topic != nil && m.Found() {
		md = fmt.Sprintf("# %s\n\n%s\n", m.Topic.Title, m.Reply)
	}
	out, err := tui.NewRenderer()(md)
	if err != nil {
		out = md + "\n"
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// PrintGraph writes the step machine as Mermaid or JSON edges.
func PrintGraph(w io.Writer, format string) error {
	edges := navigator.Edges()
	switch format {
	case "", "mermaid":
		_, err := fmt.Fprint(w, graph.GenerateMermaid(edges, nil))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(edges)
	}
	return fmt.Errorf("unknown graph format %q (mermaid, json)", format)
}
