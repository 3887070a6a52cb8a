package commit

import "strings"

// Footer is a trailing "Token: value" line from the last paragraph of a message
type Footer struct {
	Token string
	Value string
}

// IsBreaking reports whether this footer declares a breaking change
func (f Footer) IsBreaking() bool {
	return f.Token == "BREAKING CHANGE" || f.Token == "BREAKING-CHANGE"
}

// Message is a commit message decomposed per the Conventional Commits grammar.
// It is transient: built by Parse, read, discarded.
type Message struct {
	// Type is the header type tag (TypeExtra for configured extra tokens)
	Type Type
	// Token is the literal type token as written
	Token string
	// Scope is the parenthesized scope, empty if absent
	Scope string
	// Breaking is true if the header carries "!" or a footer declares BREAKING CHANGE
	Breaking bool
	// Description is the header text after ": "
	Description string
	// Body is the free-form text between header and footers
	Body string
	// Footers are trailing "Token: value" lines, if the last paragraph is footer-shaped
	Footers []Footer
}

// Header renders the first line of the message
func (m *Message) Header() string {
	var b strings.Builder
	b.WriteString(m.Token)
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking && !m.hasBreakingFooter() {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Description)
	return b.String()
}

// Format renders the full canonical message text. A Message produced by Parse
// formats back to an equivalent message (comment lines and trailing blank
// lines excepted).
func (m *Message) Format() string {
	var b strings.Builder
	b.WriteString(m.Header())

	if m.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(m.Body, "\n"))
	}

	if len(m.Footers) > 0 {
		b.WriteString("\n\n")
		for i, f := range m.Footers {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(f.Token)
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
	}

	return b.String()
}

func (m *Message) hasBreakingFooter() bool {
	for _, f := range m.Footers {
		if f.IsBreaking() {
			return true
		}
	}
	return false
}
