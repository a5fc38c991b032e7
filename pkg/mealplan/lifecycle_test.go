package mealplan

import (
	"errors"
	"testing"
	"time"

	"pantry-planner/domain"
)

var today = time.Date(2025, 6, 15, 19, 30, 0, 0, time.UTC)

func TestScheduleCompleteRevertRoundTrip(t *testing.T) {
	record := Record{State: StateEmpty}

	record, err := Apply(record, ActionSchedule, Payload{Planned: &PlannedMeal{RecipeName: "Lasagna"}}, today)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if record.State != StatePlanned {
		t.Fatalf("expected planned state, got %s", record.State)
	}
	if record.Planned == nil || record.Planned.RecipeName != "Lasagna" {
		t.Fatalf("expected planned recipe Lasagna, got %+v", record.Planned)
	}

	record, err = Apply(record, ActionCompleteAsPlanned, Payload{}, today)
	if err != nil {
		t.Fatalf("complete as planned: %v", err)
	}
	if record.State != StateCompleted {
		t.Fatalf("expected completed state, got %s", record.State)
	}
	if record.CompletionType != CompletionAsPlanned {
		t.Fatalf("expected as-planned completion, got %s", record.CompletionType)
	}
	if record.Actual == nil || record.Actual.Description != "Lasagna" {
		t.Fatalf("expected actual description Lasagna, got %+v", record.Actual)
	}
	if record.CompletedDate == nil || !record.CompletedDate.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected completed date 2025-06-15, got %v", record.CompletedDate)
	}

	record, err = Apply(record, ActionRevertToPlanned, Payload{}, today)
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if record.State != StatePlanned {
		t.Fatalf("expected planned state after revert, got %s", record.State)
	}
	if record.Planned == nil || record.Planned.RecipeName != "Lasagna" {
		t.Fatalf("expected planned recipe intact after revert, got %+v", record.Planned)
	}
	if record.Actual != nil || record.CompletedDate != nil || record.CompletionType != "" {
		t.Fatal("expected completion fields cleared after revert")
	}
}

func TestCompleteAsPlannedGuard(t *testing.T) {
	record := Record{State: StateEmpty}

	got, err := Apply(record, ActionCompleteAsPlanned, Payload{}, today)
	if !errors.Is(err, domain.ErrMissingPlan) {
		t.Fatalf("expected missing plan guard, got %v", err)
	}
	if !errors.Is(err, domain.ErrGuardViolation) {
		t.Fatalf("expected guard violation taxonomy, got %v", err)
	}
	if got.State != StateEmpty {
		t.Fatalf("expected record unchanged, got state %s", got.State)
	}
}

func TestCompleteWithSubstitution(t *testing.T) {
	record := Record{State: StatePlanned, Planned: &PlannedMeal{RecipeName: "Lasagna"}}

	got, err := Apply(record, ActionCompleteWithSubstitution, Payload{Description: "   "}, today)
	if !errors.Is(err, domain.ErrBlankSubstitution) {
		t.Fatalf("expected blank substitution error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input taxonomy, got %v", err)
	}
	if got.State != StatePlanned {
		t.Fatalf("expected state unchanged on rejection, got %s", got.State)
	}

	got, err = Apply(record, ActionCompleteWithSubstitution, Payload{Description: "Cereal"}, today)
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if got.State != StateCompleted || got.CompletionType != CompletionModified {
		t.Fatalf("expected modified completion, got state=%s type=%s", got.State, got.CompletionType)
	}
	if got.Actual == nil || got.Actual.Description != "Cereal" {
		t.Fatalf("expected actual description Cereal, got %+v", got.Actual)
	}
	if got.Planned == nil || got.Planned.RecipeName != "Lasagna" {
		t.Fatalf("expected original plan retained, got %+v", got.Planned)
	}
}

func TestEditPlan(t *testing.T) {
	record := Record{State: StatePlanned, Planned: &PlannedMeal{RecipeName: "Lasagna", Servings: 4}}

	got, err := Apply(record, ActionEditPlan, Payload{Planned: &PlannedMeal{RecipeName: "Veggie Lasagna"}}, today)
	if err != nil {
		t.Fatalf("edit plan: %v", err)
	}
	if got.State != StatePlanned {
		t.Fatalf("expected planned state, got %s", got.State)
	}
	if got.Planned.RecipeName != "Veggie Lasagna" {
		t.Fatalf("expected updated recipe name, got %s", got.Planned.RecipeName)
	}
	if got.Planned.Servings != 4 {
		t.Fatalf("expected untouched servings, got %d", got.Planned.Servings)
	}
	// Input record untouched.
	if record.Planned.RecipeName != "Lasagna" {
		t.Fatalf("input record mutated: %s", record.Planned.RecipeName)
	}

	_, err = Apply(Record{State: StateEmpty}, ActionEditPlan, Payload{Planned: &PlannedMeal{RecipeName: "x"}}, today)
	if !errors.Is(err, domain.ErrMissingPlan) {
		t.Fatalf("expected missing plan guard for empty record, got %v", err)
	}
}

func TestScheduleGuards(t *testing.T) {
	_, err := Apply(Record{State: StateEmpty}, ActionSchedule, Payload{Planned: &PlannedMeal{}}, today)
	if !errors.Is(err, domain.ErrBlankPlan) {
		t.Fatalf("expected blank plan error, got %v", err)
	}

	planned := Record{State: StatePlanned, Planned: &PlannedMeal{RecipeName: "Soup"}}
	_, err = Apply(planned, ActionSchedule, Payload{Planned: &PlannedMeal{RecipeName: "Stew"}}, today)
	if !errors.Is(err, domain.ErrMealAlreadyPlanned) {
		t.Fatalf("expected already planned guard, got %v", err)
	}

	// Scheduling by free-text description alone is allowed.
	got, err := Apply(Record{State: StateEmpty}, ActionSchedule, Payload{Planned: &PlannedMeal{Description: "leftovers night"}}, today)
	if err != nil {
		t.Fatalf("schedule with description: %v", err)
	}
	if got.Planned.Description != "leftovers night" {
		t.Fatalf("expected description kept, got %q", got.Planned.Description)
	}
}

func TestLogDirect(t *testing.T) {
	got, err := Apply(Record{State: StateEmpty}, ActionLogDirect, Payload{Description: "Takeout pizza"}, today)
	if err != nil {
		t.Fatalf("log direct: %v", err)
	}
	if got.State != StateCompleted {
		t.Fatalf("expected completed state, got %s", got.State)
	}
	if got.Planned != nil {
		t.Fatalf("expected no plan on a directly logged meal, got %+v", got.Planned)
	}
	if got.Actual == nil || got.Actual.Description != "Takeout pizza" {
		t.Fatalf("expected actual description, got %+v", got.Actual)
	}

	// A directly logged meal has no plan to return to.
	_, err = Apply(got, ActionRevertToPlanned, Payload{}, today)
	if !errors.Is(err, domain.ErrRevertWithoutPlan) {
		t.Fatalf("expected revert-without-plan guard, got %v", err)
	}

	_, err = Apply(Record{State: StateEmpty}, ActionLogDirect, Payload{Description: ""}, today)
	if !errors.Is(err, domain.ErrBlankMealLog) {
		t.Fatalf("expected blank log error, got %v", err)
	}
}

func TestRevertRequiresCompleted(t *testing.T) {
	_, err := Apply(Record{State: StatePlanned, Planned: &PlannedMeal{RecipeName: "Soup"}}, ActionRevertToPlanned, Payload{}, today)
	if !errors.Is(err, domain.ErrMealNotCompleted) {
		t.Fatalf("expected not-completed guard, got %v", err)
	}
}

func TestUnknownAction(t *testing.T) {
	_, err := Apply(Record{State: StateEmpty}, Action("postpone"), Payload{}, today)
	if !errors.Is(err, domain.ErrUnknownMealAction) {
		t.Fatalf("expected unknown action error, got %v", err)
	}
}

func TestCompleteAsPlannedFallsBackToDescription(t *testing.T) {
	record := Record{State: StatePlanned, Planned: &PlannedMeal{Description: "leftovers night"}}

	got, err := Apply(record, ActionCompleteAsPlanned, Payload{}, today)
	if err != nil {
		t.Fatalf("complete as planned: %v", err)
	}
	if got.Actual.Description != "leftovers night" {
		t.Fatalf("expected description fallback, got %q", got.Actual.Description)
	}
}
