package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"   ___              _     _          _     _   ", "#38bdf8"},
	{"  / __|_ __  __| | /_\\  ___ ___(_)__| |_ ", "#22d3ee"},
	{" | (__| '  \\/ _` |/ _ \\(_-<(_-<| (_-<  _|", "#2dd4bf"},
	{"  \\___|_|_|_\\__,_/_/ \\_\\/__//__/|_/__/\\__|", "#34d399"},
}

// PrintBanner writes the cmdassist banner with a cyan to green gradient.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  command assist "+version).Faint())
	}
	fmt.Fprintln(w)
}
