package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := cmdassist.New()
	require.NoError(t, err)
	return NewServer(eng)
}

func TestListPlatforms(t *testing.T) {
	s := newTestServer(t)

	out, err := s.handleListPlatforms(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)

	var ids []string
	for _, e := range out.Entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"windows", "linux", "macos"}, ids)
}

func TestListVendors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	all, err := s.handleListVendors(ctx, mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Len(t, all.Entries, 9)

	firewalls, err := s.handleListVendors(ctx, mcp.CallToolRequest{}, map[string]interface{}{"device": "firewall"})
	require.NoError(t, err)
	require.NotEmpty(t, firewalls.Entries)
	assert.Less(t, len(firewalls.Entries), len(all.Entries))
	for _, e := range firewalls.Entries {
		assert.Contains(t, strings.ToLower(strings.Join(e.Devices, " ")), "firewall", e.ID)
	}

	_, err = s.handleListVendors(ctx, mcp.CallToolRequest{}, map[string]interface{}{"device": "toaster"})
	assert.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	r, err := s.handleLookup(ctx, mcp.CallToolRequest{}, map[string]interface{}{"target": "linux", "selection": " Network Commands "})
	require.NoError(t, err)
	assert.Equal(t, "ip addr show", r.Command)

	r, err = s.handleLookup(ctx, mcp.CallToolRequest{}, map[string]interface{}{"target": "linux", "selection": "mount a share"})
	require.NoError(t, err)
	assert.True(t, r.Fallback)

	_, err = s.handleLookup(ctx, mcp.CallToolRequest{}, map[string]interface{}{"target": "plan9", "selection": "ls"})
	assert.ErrorIs(t, err, domain.ErrNotInCatalog)

	_, err = s.handleLookup(ctx, mcp.CallToolRequest{}, map[string]interface{}{"target": "linux", "selection": strings.Repeat("x", 5000)})
	assert.Error(t, err)
}

func TestSearchTopics(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	m, err := s.handleSearch(ctx, mcp.CallToolRequest{}, map[string]interface{}{"query": "osfp", "vendor": "cisco"})
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.Equal(t, "ospf", m.Topic.ID)
	assert.Contains(t, m.Reply, "router ospf 1")

	m, err = s.handleSearch(ctx, mcp.CallToolRequest{}, map[string]interface{}{"query": "ospf", "vendor": "sophos"})
	require.NoError(t, err)
	assert.Equal(t, domain.SearchVendorMismatch, m.Outcome)
	assert.Contains(t, m.Reply, "SOPHOS")

	m, err = s.handleSearch(ctx, mcp.CallToolRequest{}, map[string]interface{}{"query": "bake sourdough bread"})
	require.NoError(t, err)
	assert.Equal(t, domain.SearchNoMatch, m.Outcome)

	_, err = s.handleSearch(ctx, mcp.CallToolRequest{}, map[string]interface{}{"query": "ospf\x1b[2J" + strings.Repeat("a", 70000)})
	assert.Error(t, err)
}

func TestWizardStep_RoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	step := func(state *domain.State, kind, value string) StepResponse {
		t.Helper()
		args := map[string]interface{}{"kind": kind, "value": value}
		if state != nil {
			raw, err := json.Marshal(state)
			require.NoError(t, err)
			args["state"] = string(raw)
		}
		resp, err := s.handleWizardStep(ctx, mcp.CallToolRequest{}, args)
		require.NoError(t, err)
		return resp
	}

	start := step(nil, "", "")
	assert.Equal(t, domain.StepPlatformSelection, start.State.Step)
	require.NotNil(t, start.Screen)
	assert.False(t, start.Moved)

	resp := step(start.State, "select", "router")
	assert.True(t, resp.Moved)
	assert.Equal(t, domain.StepVendorSelection, resp.State.Step)

	resp = step(resp.State, "select", "cisco")
	assert.Equal(t, domain.StepVendorCategoryBrowse, resp.State.Step)

	resp = step(resp.State, "back", "")
	assert.Equal(t, domain.StepVendorSelection, resp.State.Step)

	ignored := step(resp.State, "select", "not-a-vendor")
	assert.False(t, ignored.Moved)
	assert.Equal(t, domain.StepVendorSelection, ignored.State.Step)
}

func TestWizardStep_RejectsBadState(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleWizardStep(ctx, mcp.CallToolRequest{}, map[string]interface{}{"state": "{not json"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = s.handleWizardStep(ctx, mcp.CallToolRequest{}, map[string]interface{}{"state": `{"step":"warp","history":[]}`})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = s.handleWizardStep(ctx, mcp.CallToolRequest{}, map[string]interface{}{"kind": "jump"})
	assert.ErrorIs(t, err, domain.ErrUnknownInput)
}

func TestCatalogResource(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readCatalog(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogURI, text.URI)

	var payload struct {
		Platforms []domain.Platform `json:"platforms"`
		Vendors   []domain.Vendor   `json:"vendors"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	assert.Len(t, payload.Platforms, 3)
	assert.NotEmpty(t, payload.Vendors)
}
