package runner

import (
	"strconv"
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Reserved words understood on every screen.
const (
	WordBack    = "back"
	WordRestart = "restart"
	WordQuit    = "quit"
)

// ParseInput interprets raw user text against the screen it answers.
//
// Resolution order: reserved words (back, restart/reset, quit/exit), a
// 1-based option index, an option id, an option label (case-insensitive),
// and finally free text. Free text becomes a query on screens that accept
// one and an unknown selection elsewhere, which the navigator ignores.
// quit is true when the user asked to leave.
func ParseInput(screen domain.Screen, raw string) (in domain.Input, quit bool) {
	text := strings.TrimSpace(raw)
	switch strings.ToLower(text) {
	case WordBack:
		return domain.Back(), false
	case WordRestart, "reset":
		return domain.Reset(), false
	case WordQuit, "exit":
		return domain.Input{}, true
	}

	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(screen.Options) {
		return domain.Select(screen.Options[n-1].ID), false
	}
	if o, ok := screen.Option(text); ok {
		return domain.Select(o.ID), false
	}
	for _, o := range screen.Options {
		if strings.EqualFold(o.Label, text) || strings.EqualFold(o.ID, text) {
			return domain.Select(o.ID), false
		}
	}

	if screen.AcceptsQuery {
		return domain.Query(text), false
	}
	return domain.Select(text), false
}
