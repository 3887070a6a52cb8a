package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain message untouched",
			input: "feat: add arrays",
			want:  "feat: add arrays",
		},
		{
			name: "comment lines stripped",
			input: "feat: add arrays\n" +
				"# Please enter the commit message for your changes.\n" +
				"# Lines starting with '#' will be ignored.\n",
			want: "feat: add arrays",
		},
		{
			name: "scissors cuts the diff",
			input: "feat: add arrays\n" +
				"# ------------------------ >8 ------------------------\n" +
				"diff --git a/parser.go b/parser.go\n" +
				"+func parseArray() {}\n",
			want: "feat: add arrays",
		},
		{
			name:  "trailing blank lines trimmed",
			input: "feat: add arrays\n\n\n",
			want:  "feat: add arrays",
		},
		{
			name: "body between comments survives",
			input: "feat: add arrays\n" +
				"\n" +
				"Arrays nest arbitrarily.\n" +
				"# On branch dev\n",
			want: "feat: add arrays\n\nArrays nest arbitrarily.",
		},
		{
			name:  "crlf normalized",
			input: "feat: add arrays\r\n\r\nWindows body.\r\n",
			want:  "feat: add arrays\n\nWindows body.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanMessage(tc.input); got != tc.want {
				t.Errorf("CleanMessage(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestReadMessageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	content := "fix(lexer): correct escapes\n# comment\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadMessageFile(path)
	if err != nil {
		t.Fatalf("ReadMessageFile returned error: %v", err)
	}
	if got != "fix(lexer): correct escapes" {
		t.Errorf("got %q", got)
	}

	if _, err := ReadMessageFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file did not error")
	}
}
