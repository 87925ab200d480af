// Package output renders command results for terminals, pipes and machines.
//
// The renderer picks one of four presentations:
//   - text: lipgloss styling and go-pretty tables, for interactive terminals
//   - markdown: plain pipe tables, for agents and scripts
//   - json and yaml: machine-readable documents
//
// ModeAuto resolves to text on a TTY and markdown otherwise.
package output

import "strings"

// OutputMode selects how results are presented.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists every accepted mode name.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// Mode converts a user-supplied string to an OutputMode.
// Empty or unrecognised values map to ModeAuto; "md" is accepted for markdown.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	case "yaml", "yml":
		return ModeYAML
	default:
		return ModeAuto
	}
}

// IsValidMode reports whether s names a known mode. Empty is valid (auto).
func IsValidMode(s string) bool {
	if s == "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "text", "markdown", "md", "json", "yaml", "yml":
		return true
	}
	return false
}
