package commit

// Type is a commit type token from the Conventional Commits header.
// The set is closed; tokens allowed only via configuration parse to TypeExtra
// and keep their literal token on the Message.
type Type int

const (
	TypeFeat Type = iota
	TypeFix
	TypeChore
	TypeDocs
	TypeStyle
	TypeRefactor
	TypePerf
	TypeTest

	// TypeExtra marks a token accepted through configuration, outside the core set
	TypeExtra Type = -1
)

var typeTokens = []string{
	"feat",
	"fix",
	"chore",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeTokens) {
		return typeTokens[t]
	}
	return "extra"
}

// Describe returns a short description of what the type is for
func (t Type) Describe() string {
	switch t {
	case TypeFeat:
		return "A new feature"
	case TypeFix:
		return "A bug fix"
	case TypeChore:
		return "Maintenance that touches no production code"
	case TypeDocs:
		return "Documentation only"
	case TypeStyle:
		return "Formatting, whitespace, missing semicolons"
	case TypeRefactor:
		return "A code change that neither fixes a bug nor adds a feature"
	case TypePerf:
		return "A performance improvement"
	case TypeTest:
		return "Adding or correcting tests"
	default:
		return "Project-specific type from configuration"
	}
}

// ParseType looks up a token in the core type set
func ParseType(token string) (Type, bool) {
	for i, t := range typeTokens {
		if t == token {
			return Type(i), true
		}
	}
	return TypeExtra, false
}

// Types returns the core type set in display order
func Types() []Type {
	types := make([]Type, len(typeTokens))
	for i := range typeTokens {
		types[i] = Type(i)
	}
	return types
}
