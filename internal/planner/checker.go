// Package planner implements the conflict checker: the pure decision
// function gatekeeping every add to a draft schedule. The checker decides,
// the surrounding session mutates; the draft trusts accepted candidates.
package planner

import (
	"fmt"

	"github.com/danicpp/course-advisor/internal/domain"
)

// ReasonCode classifies why a candidate was rejected.
type ReasonCode string

const (
	ReasonCreditLimitExceeded ReasonCode = "CREDIT_LIMIT_EXCEEDED"
	ReasonTimeConflict        ReasonCode = "TIME_CONFLICT"
)

// Decision is the outcome of a CheckAdd call.
type Decision struct {
	Accepted bool

	// AlreadyPresent marks an idempotent accept: the candidate is in the
	// draft already and adding it again changes nothing.
	AlreadyPresent bool

	// Reason and Message are set on rejection only.
	Reason  ReasonCode
	Message string

	// ConflictsWith names the draft course clashing with the candidate
	// when Reason is ReasonTimeConflict.
	ConflictsWith string
}

// CheckAdd decides whether candidate may join draft. It is pure: no side
// effects, draft is never mutated. Checks run in the order the UI reports
// them: duplicate short-circuit, credit cap, then per-slot time conflicts.
func CheckAdd(candidate *domain.Course, draft *domain.DraftSchedule) Decision {
	if draft.Contains(candidate.ID) {
		return Decision{Accepted: true, AlreadyPresent: true}
	}

	if draft.TotalCredits()+candidate.Credits > domain.CreditCap {
		return Decision{
			Reason: ReasonCreditLimitExceeded,
			Message: fmt.Sprintf("adding %s would exceed the %d credit limit",
				candidate.ID, domain.CreditCap),
		}
	}

	for _, member := range draft.Courses() {
		for _, have := range member.Slots {
			for _, want := range candidate.Slots {
				if have.Overlaps(want) {
					return Decision{
						Reason: ReasonTimeConflict,
						Message: fmt.Sprintf("clash with %s (%s %d)",
							member.Name, have.Day, have.Start),
						ConflictsWith: member.ID,
					}
				}
			}
		}
	}

	return Decision{Accepted: true}
}
