package app

// Screen represents the current view in the compose wizard
type Screen int

const (
	ScreenTypeSelect Screen = iota
	ScreenScopeInput
	ScreenDescriptionInput
	ScreenBodyInput
	ScreenBreakingConfirm
	ScreenPreview
	ScreenCommitting
	ScreenDone
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"TypeSelect",
		"ScopeInput",
		"DescriptionInput",
		"BodyInput",
		"BreakingConfirm",
		"Preview",
		"Committing",
		"Done",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
