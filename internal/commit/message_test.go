package commit

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "header only",
			msg:  Message{Type: TypeFeat, Token: "feat", Description: "add arrays"},
			want: "feat: add arrays",
		},
		{
			name: "scope and bang",
			msg:  Message{Type: TypeFix, Token: "fix", Scope: "lexer", Breaking: true, Description: "drop old escapes"},
			want: "fix(lexer)!: drop old escapes",
		},
		{
			name: "body and footer",
			msg: Message{
				Type: TypeChore, Token: "chore", Description: "rotate keys",
				Body:    "Old keys expire on Friday.",
				Footers: []Footer{{Token: "Refs", Value: "#9"}},
			},
			want: "chore: rotate keys\n\nOld keys expire on Friday.\n\nRefs: #9",
		},
		{
			name: "breaking footer suppresses bang",
			msg: Message{
				Type: TypeFeat, Token: "feat", Breaking: true, Description: "new auth",
				Footers: []Footer{{Token: "BREAKING CHANGE", Value: "tokens are opaque now"}},
			},
			want: "feat: new auth\n\nBREAKING CHANGE: tokens are opaque now",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.Format(); got != tc.want {
				t.Errorf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"feat(parser): add ability to parse arrays",
		"fix!: tighten validation",
		"chore: rotate keys\n\nOld keys expire on Friday.\n\nRefs: #9",
		"feat: new auth\n\nBREAKING CHANGE: tokens are opaque now",
	}

	for _, input := range inputs {
		msg, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if got := msg.Format(); got != input {
			t.Errorf("Format(Parse(%q)) = %q", input, got)
		}
	}
}

func TestTypeTable(t *testing.T) {
	want := []string{"feat", "fix", "chore", "docs", "style", "refactor", "perf", "test"}
	types := Types()
	if len(types) != len(want) {
		t.Fatalf("Types() has %d entries, want %d", len(types), len(want))
	}
	for i, typ := range types {
		if typ.String() != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, typ.String(), want[i])
		}
		parsed, ok := ParseType(want[i])
		if !ok || parsed != typ {
			t.Errorf("ParseType(%q) = %v, %v", want[i], parsed, ok)
		}
		if typ.Describe() == "" {
			t.Errorf("Describe() empty for %s", typ)
		}
	}

	if _, ok := ParseType("oops"); ok {
		t.Error("ParseType accepted an unknown token")
	}
}
