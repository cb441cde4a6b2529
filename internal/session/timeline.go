package session

import "github.com/agentally/buyerdesk/internal/database/repository"

// StageStatus is the derived display state of a timeline stage.
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageActive    StageStatus = "active"
	StageUpcoming  StageStatus = "upcoming"
)

// StageState projects a stage's flags onto its display state. Completed wins
// over active; a stage with neither flag is upcoming.
func StageState(s repository.TimelineStage) StageStatus {
	switch {
	case s.Completed:
		return StageCompleted
	case s.Active:
		return StageActive
	default:
		return StageUpcoming
	}
}

// StageProgress counts completed tasks against the stage checklist.
func StageProgress(s repository.TimelineStage) (done, total int) {
	for _, t := range s.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(s.Tasks)
}
