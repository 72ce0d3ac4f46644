package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Replies for searches that find no usable topic.
const (
	ReplyEmpty   = "Ask a command topic (e.g., OSPF, VLAN, STP, NAT)."
	ReplyOutside = "Sorry, that is outside Command Assist. I can help with IOS basics, routing, VLANs, STP, DHCP, ACLs, NAT, IPv6, security, and management commands."
)

// Score weights of a topic search.
const (
	keywordWeight   = 2
	sameVendorBonus = 4
	anyVendorBonus  = 1
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// corrections maps frequent misspellings to the word they stand for.
var corrections = map[string]string{
	"subent":    "subnet",
	"subbnet":   "subnet",
	"whoos":     "whois",
	"whos":      "whois",
	"reprot":    "report",
	"logg":      "log",
	"osfp":      "ospf",
	"ogp":       "bgp",
	"hspr":      "hsrp",
	"vrpp":      "vrrp",
	"intervlan": "inter vlan",
}

// vendorHints detects a vendor named in a question, first hit wins.
var vendorHints = []struct {
	vendor string
	words  []string
}{
	{"cisco", []string{"cisco"}},
	{"juniper", []string{"juniper", "junos"}},
	{"mikrotik", []string{"mikrotik"}},
	{"arista", []string{"arista", "nxos"}},
}

// Normalize lowercases text and collapses every run of non-alphanumerics to
// a single space.
func Normalize(text string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(text), " "))
}

// Correct replaces misspelled words of normalized text.
func Correct(normalized string) string {
	words := strings.Fields(normalized)
	for i, w := range words {
		if fix, ok := corrections[w]; ok {
			words[i] = fix
		}
	}
	return strings.Join(words, " ")
}

// DetectVendor returns the vendor mentioned in normalized text, or "".
func DetectVendor(normalized string) string {
	for _, h := range vendorHints {
		for _, w := range h.words {
			if strings.Contains(normalized, w) {
				return h.vendor
			}
		}
	}
	return ""
}

// fuzzyContains reports whether keyword occurs in input, or a word of input
// is within edit distance 1 of it (2 for keywords longer than five bytes).
func fuzzyContains(input, keyword string) bool {
	if strings.Contains(input, keyword) {
		return true
	}
	limit := 1
	if len(keyword) > 5 {
		limit = 2
	}
	for _, word := range strings.Fields(input) {
		if abs(len(word)-len(keyword)) > limit {
			continue
		}
		if levenshtein.ComputeDistance(word, keyword) <= limit {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type indexedTopic struct {
	topic    domain.Topic
	keywords []string
}

func indexTopics(topics []domain.Topic) []indexedTopic {
	out := make([]indexedTopic, 0, len(topics))
	for _, t := range topics {
		it := indexedTopic{topic: t.Clone()}
		for _, k := range t.Keywords {
			if n := Normalize(k); n != "" {
				it.keywords = append(it.keywords, n)
			}
		}
		out = append(out, it)
	}
	return out
}

// Search answers a free-text question from the topic library.
//
// Each topic scores two points per matched keyword, four more when its
// vendor is the requested one and one more when it applies to any vendor.
// The first topic with the highest score wins. An empty vendor is detected
// from the question. A winner tied to another vendor is reported as
// domain.SearchVendorMismatch.
func (s *Store) Search(query, vendor string) domain.TopicMatch {
	q := Correct(Normalize(query))
	if q == "" {
		return domain.TopicMatch{Outcome: domain.SearchEmpty, Reply: ReplyEmpty}
	}

	vendor = strings.ToLower(strings.TrimSpace(vendor))
	if vendor == "" {
		vendor = DetectVendor(q)
	}
	m := domain.TopicMatch{Query: q, Vendor: vendor}

	var best *indexedTopic
	for i := range s.topics {
		it := &s.topics[i]
		matches := 0
		for _, k := range it.keywords {
			if fuzzyContains(q, k) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := matches * keywordWeight
		switch it.topic.Vendor {
		case vendor:
			score += sameVendorBonus
		case domain.TopicAnyVendor:
			score += anyVendorBonus
		}
		if score > m.Score {
			m.Score, best = score, it
		}
	}

	if best == nil {
		m.Outcome, m.Reply = domain.SearchNoMatch, ReplyOutside
		return m
	}

	t := best.topic.Clone()
	m.Topic = &t
	if vendor != "" && t.Vendor != domain.TopicAnyVendor && t.Vendor != vendor {
		m.Outcome = domain.SearchVendorMismatch
		m.Reply = fmt.Sprintf("I only have %s command blocks for this topic right now. Tell me if you want me to add %s examples.",
			strings.ToUpper(t.Vendor), strings.ToUpper(vendor))
		return m
	}
	m.Outcome, m.Reply = domain.SearchMatched, t.Reply()
	return m
}
