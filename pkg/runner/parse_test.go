package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/cmdassist/pkg/domain"
)

func TestParseInput(t *testing.T) {
	menu := domain.Screen{
		Step: domain.StepPlatformSelection,
		Options: []domain.Option{
			{ID: "linux", Label: "Linux"},
			{ID: "windows", Label: "Windows"},
			{ID: "router", Label: "Router"},
		},
	}
	actions := domain.Screen{
		Step: domain.StepPlatformAction,
		Options: []domain.Option{
			{ID: "Network Commands", Label: "Network Commands"},
		},
		AcceptsQuery: true,
		CanGoBack:    true,
	}

	tests := []struct {
		name   string
		screen domain.Screen
		raw    string
		want   domain.Input
		quit   bool
	}{
		{"index", menu, "2", domain.Select("windows"), false},
		{"index out of range", menu, "9", domain.Select("9"), false},
		{"id", menu, "router", domain.Select("router"), false},
		{"label case-insensitive", menu, "LINUX", domain.Select("linux"), false},
		{"padded", menu, "  linux \n", domain.Select("linux"), false},
		{"back", actions, "Back", domain.Back(), false},
		{"restart", actions, "restart", domain.Reset(), false},
		{"reset alias", actions, "reset", domain.Reset(), false},
		{"quit", menu, "quit", domain.Input{}, true},
		{"exit", menu, "EXIT", domain.Input{}, true},
		{"label with spaces", actions, "network commands", domain.Select("Network Commands"), false},
		{"free text on query screen", actions, "mount a share", domain.Query("mount a share"), false},
		{"free text elsewhere", menu, "solaris", domain.Select("solaris"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := ParseInput(tt.screen, tt.raw)
			assert.Equal(t, tt.quit, quit)
			if !tt.quit {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
