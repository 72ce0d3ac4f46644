package domain

import "strings"

// TopicAnyVendor marks topics that apply whatever the vendor.
const TopicAnyVendor = "any"

// TopicBlock is one command block of a topic, optionally headed.
type TopicBlock struct {
	Heading  string `json:"heading,omitempty" mapstructure:"heading"`
	Commands string `json:"commands" mapstructure:"commands"`
}

// Topic answers free-text questions: its keywords select it, its blocks
// are the reply.
type Topic struct {
	ID       string       `json:"id" mapstructure:"id"`
	Vendor   string       `json:"vendor" mapstructure:"vendor"`
	Title    string       `json:"title" mapstructure:"title"`
	Keywords []string     `json:"keywords" mapstructure:"keywords"`
	Intro    string       `json:"intro" mapstructure:"intro"`
	Blocks   []TopicBlock `json:"blocks,omitempty" mapstructure:"blocks"`
	Note     string       `json:"note,omitempty" mapstructure:"note"`
}

// Clone returns a deep copy of the topic.
func (t Topic) Clone() Topic {
	c := t
	c.Keywords = append([]string(nil), t.Keywords...)
	c.Blocks = append([]TopicBlock(nil), t.Blocks...)
	return c
}

// Reply renders the topic as a Markdown answer.
func (t Topic) Reply() string {
	var b strings.Builder
	b.WriteString(t.Intro)
	for _, blk := range t.Blocks {
		if blk.Heading != "" {
			b.WriteString("\n\n" + blk.Heading)
		}
		b.WriteString("\n\n```\n" + blk.Commands + "\n```")
	}
	if t.Note != "" {
		b.WriteString("\n" + t.Note)
	}
	return b.String()
}

// SearchOutcome classifies a topic search.
type SearchOutcome string

const (
	SearchMatched        SearchOutcome = "matched"
	SearchVendorMismatch SearchOutcome = "vendor_mismatch"
	SearchNoMatch        SearchOutcome = "no_match"
	SearchEmpty          SearchOutcome = "empty"
)

// TopicMatch is the answer to a free-text question.
type TopicMatch struct {
	// Query is the normalized question after typo corrections.
	Query string `json:"query"`
	// Vendor is the requested or detected vendor; empty when unknown.
	Vendor  string        `json:"vendor,omitempty"`
	Outcome SearchOutcome `json:"outcome"`
	// Topic is the best scoring topic, also set on a vendor mismatch.
	Topic *Topic `json:"topic,omitempty"`
	Score int    `json:"score,omitempty"`
	Reply string `json:"reply"`
}

// Found reports whether the topic answers the question for the vendor.
func (m TopicMatch) Found() bool {
	return m.Outcome == SearchMatched && m.Topic != nil
}
