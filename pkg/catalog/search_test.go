package catalog_test

import (
	"testing"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndCorrect(t *testing.T) {
	assert.Equal(t, "osfp neighbors", catalog.Normalize("  OSFP -- Neighbors!"))
	assert.Equal(t, "ospf neighbors", catalog.Correct("osfp neighbors"))
	assert.Equal(t, "router on inter vlan", catalog.Correct("router on intervlan"))
	assert.Equal(t, "", catalog.Normalize("?! "))
}

func TestDetectVendor(t *testing.T) {
	assert.Equal(t, "juniper", catalog.DetectVendor("show junos config"))
	assert.Equal(t, "arista", catalog.DetectVendor("nxos vlan"))
	assert.Equal(t, "", catalog.DetectVendor("show arp"))
}

func TestSearch_CorrectsTypos(t *testing.T) {
	store := defaultStore(t)

	tests := []struct {
		query   string
		wantID  string
		wantCmd string
	}{
		{"osfp", "ospf", "router ospf 1"},
		{"hspr", "hsrp", "standby 1 ip 10.10.10.1"},
		{"vlan trunk", "vlan-vtp", "show vlan brief"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m := store.Search(tt.query, "cisco")
			require.True(t, m.Found(), "outcome %s", m.Outcome)
			assert.Equal(t, tt.wantID, m.Topic.ID)
			assert.Equal(t, 6, m.Score)
			assert.Contains(t, m.Reply, tt.wantCmd)
			assert.Contains(t, m.Reply, "```")
		})
	}
}

func TestSearch_VendorWeighting(t *testing.T) {
	store := defaultStore(t)

	m := store.Search("ospf area 0", "cisco")
	require.True(t, m.Found())
	assert.Equal(t, "ospf", m.Topic.ID)

	m = store.Search("ospf area 0", "juniper")
	require.True(t, m.Found())
	assert.Equal(t, "junos-ospf", m.Topic.ID)

	// Detected from the question when no vendor is given.
	m = store.Search("Juniper OSPF area 0", "")
	require.True(t, m.Found())
	assert.Equal(t, "juniper", m.Vendor)
	assert.Equal(t, "junos-ospf", m.Topic.ID)
}

func TestSearch_AnyVendorBonus(t *testing.T) {
	store := defaultStore(t)

	m := store.Search("ping", "")
	require.True(t, m.Found())
	assert.Equal(t, "linux-networking", m.Topic.ID)
	assert.Equal(t, 3, m.Score)

	m = store.Search("ping", "cisco")
	require.True(t, m.Found())
	assert.Equal(t, "connectivity", m.Topic.ID)
}

func TestSearch_VendorMismatch(t *testing.T) {
	m := defaultStore(t).Search("ospf", "Fortinet")

	assert.Equal(t, domain.SearchVendorMismatch, m.Outcome)
	assert.False(t, m.Found())
	require.NotNil(t, m.Topic)
	assert.Equal(t, "ospf", m.Topic.ID)
	assert.Equal(t, "fortinet", m.Vendor)
	assert.Equal(t, "I only have CISCO command blocks for this topic right now. Tell me if you want me to add FORTINET examples.", m.Reply)
}

func TestSearch_NoMatch(t *testing.T) {
	store := defaultStore(t)

	m := store.Search("bake sourdough bread", "")
	assert.Equal(t, domain.SearchNoMatch, m.Outcome)
	assert.Nil(t, m.Topic)
	assert.Equal(t, catalog.ReplyOutside, m.Reply)

	m = store.Search("  ?! ", "cisco")
	assert.Equal(t, domain.SearchEmpty, m.Outcome)
	assert.Equal(t, catalog.ReplyEmpty, m.Reply)
}

func TestSearch_ReturnsCopies(t *testing.T) {
	store := defaultStore(t)

	m := store.Search("hsrp", "cisco")
	require.True(t, m.Found())
	m.Topic.Blocks[0].Commands = "mutated"
	m.Topic.Keywords[0] = "mutated"

	again := store.Search("hsrp", "cisco")
	require.True(t, again.Found())
	assert.NotEqual(t, "mutated", again.Topic.Blocks[0].Commands)
	assert.Equal(t, "hsrp", again.Topic.Keywords[0])
}

func TestDefault_Topics(t *testing.T) {
	topics := defaultStore(t).Topics()
	require.Len(t, topics, 53)
	assert.Equal(t, "help", topics[0].ID)
	assert.Equal(t, domain.TopicAnyVendor, topics[0].Vendor)
	assert.Empty(t, topics[0].Blocks)

	var rip domain.Topic
	for _, tp := range topics {
		if tp.ID == "rip" {
			rip = tp
		}
	}
	require.Len(t, rip.Blocks, 2)
	assert.Equal(t, "Debug:", rip.Blocks[1].Heading)
	assert.Contains(t, rip.Reply(), "Debug:\n\n```\ndebug ip rip")
}
