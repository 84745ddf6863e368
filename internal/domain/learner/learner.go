package learner

import (
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/id"
)

// Learner is a person studying toward one license class.
type Learner struct {
	ID        string
	Callsign  *string // nil until the learner holds a call sign
	Class     exam.LicenseClass
	CreatedAt time.Time
}

// New creates a Learner with a generated ID.
func New(class exam.LicenseClass, callsign *string, now time.Time) *Learner {
	return &Learner{
		ID:        id.New(),
		Callsign:  callsign,
		Class:     class,
		CreatedAt: now.UTC(),
	}
}
