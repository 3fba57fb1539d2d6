package checker

// Outcome is the terminal state of a single file's pass.
type Outcome int

const (
	// NoMatch means the file declares no default-exported class.
	NoMatch Outcome = iota
	// Match means the declared class already equals the base name.
	Match
	// Mismatch means the difference was reported but the file was left alone.
	Mismatch
	// Rewritten means the difference was reported and the file corrected.
	Rewritten
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no_match"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Rewritten:
		return "rewritten"
	default:
		return "unknown"
	}
}

// Result describes what happened to one file.
type Result struct {
	Path      string
	AbsPath   string
	BaseName  string
	ClassName string
	Outcome   Outcome
}
