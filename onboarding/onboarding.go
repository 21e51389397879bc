// Package onboarding gates the first exchange of a session: the very
// next user message after the name prompt is treated as a name
// candidate, exactly once.
package onboarding

import (
	"strings"
	"unicode"
)

type State int

const (
	StateAwaitingName State = iota
	StateReady
)

// Machine is the two-state onboarding automaton. Ready is terminal and
// never reverts.
type Machine struct {
	state State
	name  string
}

// New starts Ready when a name was restored from persistence.
func New(restoredName string) *Machine {
	if restoredName != "" {
		return &Machine{state: StateReady, name: restoredName}
	}
	return &Machine{state: StateAwaitingName}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Ready() bool {
	return m.state == StateReady
}

// Name returns the captured name, empty if none was ever accepted.
func (m *Machine) Name() string {
	return m.name
}

// Capture consumes the one name-candidate message. The first
// whitespace-delimited token is accepted unless empty, 50+ runes, or
// purely numeric; accepted names are stored as First-letter-capitalized.
// Either way the machine moves to Ready: there is no retry loop, a
// rejected candidate simply falls through to normal classification.
func (m *Machine) Capture(input string) (string, bool) {
	if m.state == StateReady {
		return m.name, false
	}
	m.state = StateReady

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", false
	}
	token := fields[0]
	if len([]rune(token)) >= 50 || isNumeric(token) {
		return "", false
	}

	m.name = capitalize(token)
	return m.name, true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
