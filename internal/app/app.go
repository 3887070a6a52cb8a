// Package app is the bubbletea compose wizard: it walks the author through
// type, scope, description, body and breaking marker, previews the formatted
// message, and optionally commits it.
package app

import (
	"strings"

	"github.com/wahlandcase/attuned.commitlint/internal/commit"
	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/lint"

	tea "github.com/charmbracelet/bubbletea"
)

// typeOption is one selectable entry on the type screen
type typeOption struct {
	typ   commit.Type
	token string
	desc  string
}

// Model is the wizard state
type Model struct {
	// Configuration
	config   *config.Config
	runner   *lint.Runner
	repoPath string
	dryRun   bool

	// Navigation
	screen     Screen
	shouldQuit bool

	// Type selection
	typeOptions []typeOption
	typeIndex   int

	// Text inputs
	scope       string
	description string
	bodyLines   []string

	// Breaking confirm: 0=No, 1=Yes
	breakingSelection int
	breaking          bool

	// Result state
	commitHash   string
	errorMessage string
	spinnerFrame int

	// Window size
	width  int
	height int
}

// New creates a new wizard model
func New(cfg *config.Config, repoPath string, dryRun bool) Model {
	options := make([]typeOption, 0, len(commit.Types())+len(cfg.Types.Extra))
	for _, t := range commit.Types() {
		options = append(options, typeOption{typ: t, token: t.String(), desc: t.Describe()})
	}
	for _, extra := range cfg.Types.Extra {
		options = append(options, typeOption{typ: commit.TypeExtra, token: extra, desc: commit.TypeExtra.Describe()})
	}

	return Model{
		config:      cfg,
		runner:      lint.NewRunner(cfg),
		repoPath:    repoPath,
		dryRun:      dryRun,
		screen:      ScreenTypeSelect,
		typeOptions: options,
		bodyLines:   []string{""},
		width:       80,
		height:      24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// buildMessage assembles the commit message from the wizard state
func (m *Model) buildMessage() *commit.Message {
	opt := m.typeOptions[m.typeIndex]

	msg := &commit.Message{
		Type:        opt.typ,
		Token:       opt.token,
		Scope:       m.scope,
		Breaking:    m.breaking,
		Description: m.description,
		Body:        strings.TrimRight(strings.Join(m.bodyLines, "\n"), "\n"),
	}

	// With the strict rule on, the bang alone would not lint clean, so the
	// wizard records the break as a footer instead
	if m.breaking && m.config.Rules.RequireBreakingFooter {
		msg.Footers = []commit.Footer{{Token: "BREAKING CHANGE", Value: m.description}}
	}

	return msg
}

// Message returns the composed commit message text
func (m *Model) Message() string {
	return m.buildMessage().Format()
}

// validationError lints the current preview, returning "" when clean
func (m *Model) validationError() string {
	if _, err := m.runner.CheckMessage(m.Message()); err != nil {
		return err.Error()
	}
	return ""
}
