// Package disclosure drives the progressive fetch-and-reveal of course
// content: outline first, then per-week breakdowns, then per-day details,
// each fetched at most once per course and only when the user asks.
package disclosure

import (
	"context"
	"errors"
	"strings"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/course"
)

var (
	// ErrMissingGoal is a local validation failure; no network call is made.
	ErrMissingGoal = errors.New("a learning goal is required")
	// ErrMissingModel is a local validation failure; no network call is made.
	ErrMissingModel = errors.New("a model must be selected")
)

// Generator is the slice of the backend client the controller drives.
type Generator interface {
	GenerateOutline(ctx context.Context, goal, model string) (*course.Course, error)
	GenerateWeek(ctx context.Context, req api.WeekRequest) ([]course.Day, error)
	GenerateDay(ctx context.Context, req api.DayRequest) (*course.DayDetails, error)
}

// Controller owns the disclosure state machine. Transitions are claimed
// atomically in the store, so a toggle on a week whose fetch is already in
// flight never dials the backend a second time.
type Controller struct {
	store *course.Store
	gen   Generator
}

func New(store *course.Store, gen Generator) *Controller {
	return &Controller{store: store, gen: gen}
}

// ValidateRequest checks a start request locally. It is the same check
// StartCourse runs before touching the network, exposed so callers can
// reject bad input without any state changes.
func ValidateRequest(goal, model string) error {
	if strings.TrimSpace(goal) == "" {
		return ErrMissingGoal
	}
	if strings.TrimSpace(model) == "" {
		return ErrMissingModel
	}
	return nil
}

// StartCourse validates the request locally, generates a fresh outline and
// installs it wholesale, replacing any previous course. Every week of the
// new course starts collapsed.
func (c *Controller) StartCourse(ctx context.Context, goal, model string) error {
	if err := ValidateRequest(goal, model); err != nil {
		return err
	}
	goal = strings.TrimSpace(goal)

	crs, err := c.gen.GenerateOutline(ctx, goal, model)
	if err != nil {
		return err
	}
	c.store.Replace(crs)
	return nil
}

// ToggleWeek runs one toggle action against the week state machine. A
// collapsed week with cached days expands without a network call; a week
// without days fetches its breakdown first. Toggles on a week that is
// already loading are dropped. On fetch failure the week reverts to
// collapsed-without-data so re-toggling retries.
func (c *Controller) ToggleWeek(ctx context.Context, weekNumber int) error {
	outcome, fetch, err := c.store.ToggleWeek(weekNumber)
	if err != nil {
		return err
	}
	if outcome != course.ToggleFetchNeeded {
		return nil
	}

	days, err := c.gen.GenerateWeek(ctx, api.WeekRequest{
		Goal:       fetch.Goal,
		WeekNumber: fetch.Number,
		WeekTitle:  fetch.Title,
		Concepts:   fetch.Concepts,
		Model:      fetch.Model,
	})
	if err != nil {
		c.store.FailWeekLoad(fetch.CourseID, fetch.Number)
		return err
	}
	c.store.CompleteWeekLoad(fetch.CourseID, fetch.Number, days)
	return nil
}

// LoadDay fetches the detail content of one day under an expanded week.
// Loading an already-loaded day is an idempotent no-op. On failure the day
// reverts to unloaded so the click can simply be repeated.
func (c *Controller) LoadDay(ctx context.Context, weekNumber, dayNumber int) error {
	outcome, fetch, err := c.store.BeginDayLoad(weekNumber, dayNumber)
	if err != nil {
		return err
	}
	if outcome != course.DayFetchNeeded {
		return nil
	}

	details, err := c.gen.GenerateDay(ctx, api.DayRequest{
		Goal:            fetch.Goal,
		DayTitle:        fetch.Title,
		DayNumber:       fetch.GlobalDay,
		DurationMinutes: fetch.DurationMinutes,
		TaskType:        fetch.TaskType,
		Model:           fetch.Model,
	})
	if err != nil {
		c.store.FailDayLoad(fetch.CourseID, fetch.Week, fetch.Day)
		return err
	}
	c.store.CompleteDayLoad(fetch.CourseID, fetch.Week, fetch.Day, details)
	return nil
}

// Reset tears down the active course (navigation back to landing).
func (c *Controller) Reset() {
	c.store.Clear()
}
