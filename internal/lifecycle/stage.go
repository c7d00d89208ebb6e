// Package lifecycle models the maintenance-request stage machine as a
// first-class rule set: transition legality and field guards are checked
// here, not scattered through handlers.
package lifecycle

import "fmt"

type Stage string

const (
	StageNew        Stage = "NEW"
	StageAssigned   Stage = "ASSIGNED"
	StageInProgress Stage = "IN_PROGRESS"
	StageRepaired   Stage = "REPAIRED"
	StageScrapped   Stage = "SCRAPPED"
)

type RequestType string

const (
	TypeCorrective RequestType = "CORRECTIVE"
	TypePreventive RequestType = "PREVENTIVE"
	TypePredictive RequestType = "PREDICTIVE"
)

// transitions lists the legal outgoing stages for each stage. REPAIRED and
// SCRAPPED are terminal.
var transitions = map[Stage][]Stage{
	StageNew:        {StageAssigned, StageInProgress, StageScrapped},
	StageAssigned:   {StageNew, StageInProgress, StageScrapped},
	StageInProgress: {StageAssigned, StageRepaired, StageScrapped},
	StageRepaired:   {},
	StageScrapped:   {},
}

func (s Stage) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Stage) Terminal() bool {
	return s == StageRepaired || s == StageScrapped
}

func (t RequestType) Valid() bool {
	switch t {
	case TypeCorrective, TypePreventive, TypePredictive:
		return true
	}
	return false
}

// RejectionError is returned when a stage change or its field guards are
// violated. Controllers surface it as a 400.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

func reject(format string, args ...interface{}) error {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// Transition checks whether a request may move from one stage to another.
// Staying in the current stage is always allowed so that plain field edits
// pass through.
func Transition(from, to Stage) error {
	if !from.Valid() {
		return reject("unknown stage %q", from)
	}
	if !to.Valid() {
		return reject("unknown stage %q", to)
	}
	if from == to {
		return nil
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	if from.Terminal() {
		return reject("stage %s is terminal and cannot change to %s", from, to)
	}
	return reject("illegal stage transition %s -> %s", from, to)
}

// Guard carries the fields the stage machine's guard rules look at.
type Guard struct {
	Type         RequestType
	Stage        Stage
	HasScheduled bool
	HasDuration  bool
}

// Check enforces the field-presence rules that apply regardless of the
// transition taken: preventive work needs a scheduled date, repaired work
// needs a recorded duration.
func (g Guard) Check() error {
	if !g.Type.Valid() {
		return reject("unknown request type %q", g.Type)
	}
	if !g.Stage.Valid() {
		return reject("unknown stage %q", g.Stage)
	}
	if g.Type == TypePreventive && !g.HasScheduled {
		return reject("Scheduled date is required for preventive maintenance")
	}
	if g.Stage == StageRepaired && !g.HasDuration {
		return reject("Duration is required for completed requests")
	}
	return nil
}
