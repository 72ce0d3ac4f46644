package presenter

import "strings"

var (
	modeEntries = []string{
		"line ", "interface ", "router ", "ip access-list", "ip route ",
		"crypto ", "policy-map ", "class-map ", "route-map ",
	}
	subModeEntries = []string{
		"permit ", "deny ", "match ", "set ", "service-policy", "bandwidth ",
		"priority ", "queue-limit ", "key ", "cert-chain ", "named-key",
	}
	// lines following one of these belong to its sub-mode.
	blockOpeners = []string{"line ", "interface ", "router "}
)

// FormatIOS lays out a multi-line IOS configuration block: mode entries sit
// at column zero and sub-mode commands are indented two spaces. Blank lines
// are dropped. Literal "\n" escapes are treated as line breaks.
func FormatIOS(command string) string {
	if command == "" {
		return ""
	}
	lines := strings.Split(command, `\n`)
	if len(lines) == 1 {
		lines = strings.Split(command, "\n")
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		prev := ""
		if i > 0 {
			prev = strings.ToLower(strings.TrimSpace(lines[i-1]))
		}
		out = append(out, strings.Repeat(" ", iosIndent(strings.ToLower(trimmed), prev))+trimmed)
	}
	return strings.Join(out, "\n")
}

func iosIndent(line, prev string) int {
	if line == "end" || line == "exit" || hasAnyPrefix(line, modeEntries) {
		return 0
	}
	if hasAnyPrefix(line, subModeEntries) || hasAnyPrefix(prev, blockOpeners) {
		return 2
	}
	return 0
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
