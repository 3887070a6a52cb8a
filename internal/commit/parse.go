// Package commit parses commit messages against the Conventional Commits
// grammar: type(scope)?!?: description, optional body, optional footers.
// Parsing is a pure single-pass match over the input; rejections are reported
// as data, never as panics.
package commit

import (
	"fmt"
	"strings"
)

// Reason classifies why a message was rejected
type Reason int

const (
	UnknownType Reason = iota
	MalformedHeader
	MissingDescription
	MalformedScope
	InconsistentBreakingMarker
)

func (r Reason) String() string {
	switch r {
	case UnknownType:
		return "unknown type"
	case MalformedHeader:
		return "malformed header"
	case MissingDescription:
		return "missing description"
	case MalformedScope:
		return "malformed scope"
	case InconsistentBreakingMarker:
		return "inconsistent breaking marker"
	default:
		return "invalid"
	}
}

// ParseError reports a grammar violation with its classification
type ParseError struct {
	Reason Reason
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Reason.String()
	}
	return e.Reason.String() + ": " + e.Detail
}

// Parse validates s against the core type set and decomposes it.
// Only the first line is matched against the header grammar; remaining lines
// become body and footers. The input is never mutated and Parse keeps no
// state, so concurrent calls are safe.
func Parse(s string) (*Message, error) {
	return ParseWith(s, nil)
}

// ParseWith is Parse with additional type tokens accepted on top of the core
// set. Messages using an extra token carry TypeExtra and the literal token.
func ParseWith(s string, extraTypes []string) (*Message, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")

	msg, err := parseHeader(lines[0], extraTypes)
	if err != nil {
		return nil, err
	}

	msg.Body, msg.Footers = splitBodyFooters(lines[1:])

	// A BREAKING CHANGE: line anywhere below the header marks the commit
	// breaking, even if it is not in footer position.
	for _, line := range lines[1:] {
		if isBreakingLine(line) {
			msg.Breaking = true
			break
		}
	}

	return msg, nil
}

func parseHeader(header string, extraTypes []string) (*Message, error) {
	i := strings.IndexAny(header, "(!:")
	if i < 0 {
		return nil, &ParseError{MalformedHeader, "missing colon separator"}
	}

	token := header[:i]
	if token == "" {
		return nil, &ParseError{MalformedHeader, "empty type token"}
	}

	typ, known := ParseType(token)
	if !known {
		extra := false
		for _, t := range extraTypes {
			if t == token {
				extra = true
				break
			}
		}
		if !extra {
			return nil, &ParseError{UnknownType, fmt.Sprintf("%q is not an allowed type", token)}
		}
	}

	msg := &Message{Type: typ, Token: token}
	rest := header[i:]

	if rest[0] == '(' {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, &ParseError{MalformedHeader, "unclosed scope"}
		}
		scope := rest[1:end]
		if !validScope(scope) {
			return nil, &ParseError{MalformedScope, fmt.Sprintf("scope %q must match [a-z0-9-]+", scope)}
		}
		msg.Scope = scope
		rest = rest[end+1:]
		if rest == "" {
			return nil, &ParseError{MalformedHeader, "missing colon separator"}
		}
	}

	if rest[0] == '!' {
		msg.Breaking = true
		rest = rest[1:]
		if rest == "" {
			return nil, &ParseError{MalformedHeader, "missing colon separator"}
		}
	}

	if rest[0] != ':' {
		return nil, &ParseError{MalformedHeader, "missing colon separator"}
	}
	rest = rest[1:]

	if !strings.HasPrefix(rest, " ") {
		return nil, &ParseError{MalformedHeader, "colon must be followed by a space"}
	}

	msg.Description = rest[1:]
	if strings.TrimSpace(msg.Description) == "" {
		return nil, &ParseError{MissingDescription, "header has no description after the colon"}
	}

	return msg, nil
}

func validScope(scope string) bool {
	if scope == "" {
		return false
	}
	for _, r := range scope {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func isBreakingLine(line string) bool {
	return strings.HasPrefix(line, "BREAKING CHANGE:") || strings.HasPrefix(line, "BREAKING-CHANGE:")
}

// splitBodyFooters separates the lines after the header into free-form body
// and trailing footers. The last paragraph becomes footers only if every line
// in it is footer-shaped; footers are not structurally validated beyond that.
func splitBodyFooters(lines []string) (string, []Footer) {
	// Trim surrounding blank lines
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return "", nil
	}

	// Find the start of the last paragraph
	last := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			last = i + 1
		}
	}

	footers := make([]Footer, 0, len(lines)-last)
	for _, line := range lines[last:] {
		f, ok := parseFooterLine(line)
		if !ok {
			// Not footer-shaped: the whole remainder is body
			return strings.Join(lines, "\n"), nil
		}
		footers = append(footers, f)
	}

	body := ""
	if last > 0 {
		body = strings.TrimRight(strings.Join(lines[:last], "\n"), "\n")
	}
	return body, footers
}

func parseFooterLine(line string) (Footer, bool) {
	if isBreakingLine(line) {
		token := line[:strings.IndexByte(line, ':')]
		value := strings.TrimSpace(line[len(token)+1:])
		return Footer{Token: token, Value: value}, true
	}

	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return Footer{}, false
	}
	token := line[:i]
	for _, r := range token {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' {
			return Footer{}, false
		}
	}
	return Footer{Token: token, Value: strings.TrimSpace(line[i+1:])}, true
}
