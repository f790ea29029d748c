package model

type Mode string

const (
	ModeComplete Mode = "complete"
	ModeProgress Mode = "progress"
)

// ParseMode maps a request's type field to a Mode. Anything that is not
// "progress" is treated as a complete piece of writing.
func ParseMode(s string) Mode {
	if Mode(s) == ModeProgress {
		return ModeProgress
	}
	return ModeComplete
}

type FeedbackRequest struct {
	Document string
	Purpose  string
	Mode     Mode
}

type InspireRequest struct {
	Document string
	Purpose  string
}
