// Package simerrors defines the sentinel error taxonomy checked via
// errors.Is/errors.As at the boundaries that need it: loader recovery,
// game-level abort, day-level abort, draft-roster block.
package simerrors

import "fmt"

// Kind classifies which error-taxonomy bucket an error belongs to.
type Kind int

const (
	KindConfiguration Kind = iota
	KindInsufficientInputs
	KindDraftRoster
	KindScheduleAnomaly
	KindTransientIO
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInsufficientInputs:
		return "insufficient_inputs"
	case KindDraftRoster:
		return "draft_roster"
	case KindScheduleAnomaly:
		return "schedule_anomaly"
	case KindTransientIO:
		return "transient_io"
	default:
		return "unknown"
	}
}

// SimError carries enough context to diagnose a failure: team ID,
// file path, and row number when applicable.
type SimError struct {
	Kind    Kind
	Message string
	Team    string
	Path    string
	Row     int
	Err     error
}

func (e *SimError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Team != "" {
		msg += fmt.Sprintf(" (team=%s)", e.Team)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Row > 0 {
		msg += fmt.Sprintf(" (row=%d)", e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SimError) Unwrap() error { return e.Err }

// Is supports errors.Is(err, simerrors.ErrDraftRosterBlocked) style
// checks against the Kind, independent of message/context fields.
func (e *SimError) Is(target error) bool {
	other, ok := target.(*SimError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel kind markers for errors.Is comparisons.
var (
	ErrInsufficientInputs   = &SimError{Kind: KindInsufficientInputs, Message: "insufficient inputs"}
	ErrDraftRosterBlocked   = &SimError{Kind: KindDraftRoster, Message: "draft roster error"}
	ErrScheduleAnomaly      = &SimError{Kind: KindScheduleAnomaly, Message: "schedule anomaly"}
)

// Insufficient builds an insufficient-inputs error with context, e.g.
// "<9 valid hitters" or "zero pitchers".
func Insufficient(team, message string) error {
	return &SimError{Kind: KindInsufficientInputs, Message: message, Team: team}
}

// DraftRoster builds a draft-roster-error that blocks season
// advancement.
func DraftRoster(message string) error {
	return &SimError{Kind: KindDraftRoster, Message: message}
}

// ScheduleAnomaly builds an unknown-team-in-schedule error. The driver
// reports but does not mutate the schedule.
func ScheduleAnomaly(team, path string) error {
	return &SimError{Kind: KindScheduleAnomaly, Message: "unknown team in schedule", Team: team, Path: path}
}

// RowError wraps an underlying parse failure with file/row context for
// loader diagnostics.
func RowError(kind Kind, path string, row int, err error) error {
	return &SimError{Kind: kind, Message: "row parse failure", Path: path, Row: row, Err: err}
}
