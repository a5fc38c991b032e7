package mealplan

import (
	"strings"
	"time"

	"pantry-planner/domain"
)

type State string

const (
	StateEmpty     State = "empty"
	StatePlanned   State = "planned"
	StateCompleted State = "completed"
)

type Action string

const (
	ActionSchedule                 Action = "schedule"
	ActionEditPlan                 Action = "edit-plan"
	ActionCompleteAsPlanned        Action = "complete-as-planned"
	ActionCompleteWithSubstitution Action = "complete-with-substitution"
	ActionRevertToPlanned          Action = "revert-to-planned"
	ActionLogDirect                Action = "log-direct"
)

const (
	CompletionAsPlanned = "as-planned"
	CompletionModified  = "modified"
)

type PlannedMeal struct {
	RecipeID    string   `json:"recipe_id,omitempty"`
	RecipeName  string   `json:"recipe_name,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Servings    int      `json:"servings,omitempty"`
	CookingTime string   `json:"cooking_time,omitempty"`
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source,omitempty"`
}

type ActualMeal struct {
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
	RecipeName  string `json:"recipe_name,omitempty"`
}

// Record is the in-memory shape of one meal slot. State is the single source
// of truth; the optional fields are payload, never used to re-derive state.
type Record struct {
	State          State
	Planned        *PlannedMeal
	CompletedDate  *time.Time
	CompletionType string
	Actual         *ActualMeal
}

// Payload carries the user input for a transition. Planned is read by
// schedule and edit-plan; Description and Notes by the completion and
// direct-log actions.
type Payload struct {
	Planned     *PlannedMeal
	Description string
	Notes       string
}

// Apply runs one lifecycle transition and returns the resulting record. The
// input record is never mutated; on a guard or validation failure it is
// returned unchanged alongside the error.
func Apply(record Record, action Action, payload Payload, today time.Time) (Record, error) {
	switch action {
	case ActionSchedule:
		return schedule(record, payload)
	case ActionEditPlan:
		return editPlan(record, payload)
	case ActionCompleteAsPlanned:
		return completeAsPlanned(record, today)
	case ActionCompleteWithSubstitution:
		return completeWithSubstitution(record, payload, today)
	case ActionRevertToPlanned:
		return revertToPlanned(record)
	case ActionLogDirect:
		return logDirect(record, payload, today)
	default:
		return record, domain.ErrUnknownMealAction
	}
}

func schedule(record Record, payload Payload) (Record, error) {
	if record.State != StateEmpty {
		if record.State == StateCompleted {
			return record, domain.ErrMealCompleted
		}
		return record, domain.ErrMealAlreadyPlanned
	}
	if payload.Planned == nil ||
		(strings.TrimSpace(payload.Planned.RecipeName) == "" && strings.TrimSpace(payload.Planned.Description) == "") {
		return record, domain.ErrBlankPlan
	}

	planned := *payload.Planned
	return Record{
		State:   StatePlanned,
		Planned: &planned,
	}, nil
}

func editPlan(record Record, payload Payload) (Record, error) {
	if record.State != StatePlanned || record.Planned == nil {
		return record, domain.ErrMissingPlan
	}
	if payload.Planned == nil ||
		(strings.TrimSpace(payload.Planned.RecipeName) == "" && strings.TrimSpace(payload.Planned.Description) == "") {
		return record, domain.ErrBlankPlan
	}

	planned := *record.Planned
	if payload.Planned.RecipeName != "" {
		planned.RecipeName = payload.Planned.RecipeName
	}
	if payload.Planned.Description != "" {
		planned.Description = payload.Planned.Description
	}

	next := record
	next.Planned = &planned
	return next, nil
}

func completeAsPlanned(record Record, today time.Time) (Record, error) {
	if record.State == StateCompleted {
		return record, domain.ErrMealCompleted
	}
	if record.State != StatePlanned || record.Planned == nil {
		return record, domain.ErrMissingPlan
	}

	description := record.Planned.RecipeName
	if description == "" {
		description = record.Planned.Description
	}

	completedDate := dateOnly(today)
	planned := *record.Planned
	return Record{
		State:          StateCompleted,
		Planned:        &planned,
		CompletedDate:  &completedDate,
		CompletionType: CompletionAsPlanned,
		Actual:         &ActualMeal{Description: description},
	}, nil
}

func completeWithSubstitution(record Record, payload Payload, today time.Time) (Record, error) {
	if record.State == StateCompleted {
		return record, domain.ErrMealCompleted
	}
	if record.State != StatePlanned || record.Planned == nil {
		return record, domain.ErrMissingPlan
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		return record, domain.ErrBlankSubstitution
	}

	// The original intent survives completion so the record can be
	// reverted to planned later.
	completedDate := dateOnly(today)
	planned := *record.Planned
	return Record{
		State:          StateCompleted,
		Planned:        &planned,
		CompletedDate:  &completedDate,
		CompletionType: CompletionModified,
		Actual: &ActualMeal{
			Description: description,
			Notes:       payload.Notes,
		},
	}, nil
}

func revertToPlanned(record Record) (Record, error) {
	if record.State != StateCompleted {
		return record, domain.ErrMealNotCompleted
	}
	if record.Planned == nil {
		return record, domain.ErrRevertWithoutPlan
	}

	planned := *record.Planned
	return Record{
		State:   StatePlanned,
		Planned: &planned,
	}, nil
}

func logDirect(record Record, payload Payload, today time.Time) (Record, error) {
	if record.State != StateEmpty {
		if record.State == StateCompleted {
			return record, domain.ErrMealCompleted
		}
		return record, domain.ErrMealAlreadyPlanned
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		return record, domain.ErrBlankMealLog
	}

	// The one legal completed-without-planned case: the meal was eaten
	// without ever being scheduled.
	completedDate := dateOnly(today)
	return Record{
		State:          StateCompleted,
		CompletedDate:  &completedDate,
		CompletionType: CompletionModified,
		Actual: &ActualMeal{
			Description: description,
			Notes:       payload.Notes,
		},
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
