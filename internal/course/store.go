package course

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNoCourse        = errors.New("no active course")
	ErrUnknownWeek     = errors.New("unknown week number")
	ErrUnknownDay      = errors.New("unknown day number")
	ErrWeekNotExpanded = errors.New("week is not expanded")
)

// ToggleOutcome describes what a week toggle did.
type ToggleOutcome int

const (
	// ToggleCollapsed means the week was expanded and is now collapsed.
	ToggleCollapsed ToggleOutcome = iota
	// ToggleExpanded means cached days were re-disclosed without a fetch.
	ToggleExpanded
	// ToggleFetchNeeded means the caller now owns the week's single
	// in-flight fetch and must complete or fail it.
	ToggleFetchNeeded
	// ToggleInFlight means a fetch is already running; the toggle is dropped.
	ToggleInFlight
)

// DayLoadOutcome describes what a day load request did.
type DayLoadOutcome int

const (
	DayFetchNeeded DayLoadOutcome = iota
	DayAlreadyLoaded
	DayFetchInFlight
)

// WeekFetch identifies a week-breakdown fetch claimed via ToggleWeek.
// CourseID pins the fetch to the course generation it was started for, so
// a response landing after the course was replaced is dropped.
type WeekFetch struct {
	CourseID uuid.UUID
	Goal     string
	Model    string
	Number   int
	Title    string
	Concepts []string
}

// DayFetch identifies a day-detail fetch claimed via BeginDayLoad.
type DayFetch struct {
	CourseID        uuid.UUID
	Goal            string
	Model           string
	Week            int
	Day             int
	GlobalDay       int
	Title           string
	TaskType        string
	DurationMinutes int
}

// Store owns the single active course. All disclosure-state transitions go
// through its methods under one lock, which is what makes the "at most one
// in-flight fetch per week" guarantee hold even with concurrent requests.
type Store struct {
	mu     sync.Mutex
	course *Course
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a freshly generated course, discarding any previous one.
// In-flight fetches for the old course resolve against a stale ID and are
// dropped on completion.
func (s *Store) Replace(c *Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.New()
	s.course = c
}

// Clear tears down the active course (navigation back to landing).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course = nil
}

// Active reports whether a course is currently loaded.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course != nil
}

// Snapshot returns a deep copy of the active course for rendering, or nil.
func (s *Store) Snapshot() *Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Clone()
}

// ToggleWeek runs the week state machine for a single toggle action.
// Only the ToggleFetchNeeded outcome hands back work to do.
func (s *Store) ToggleWeek(number int) (ToggleOutcome, WeekFetch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.course == nil {
		return 0, WeekFetch{}, ErrNoCourse
	}
	w := s.course.week(number)
	if w == nil {
		return 0, WeekFetch{}, ErrUnknownWeek
	}

	switch w.State {
	case WeekExpanded:
		w.State = WeekCollapsed
		return ToggleCollapsed, WeekFetch{}, nil
	case WeekLoading:
		return ToggleInFlight, WeekFetch{}, nil
	}

	// Collapsed. Cached days are re-disclosed without a network call.
	if w.Days != nil {
		w.State = WeekExpanded
		return ToggleExpanded, WeekFetch{}, nil
	}

	w.State = WeekLoading
	return ToggleFetchNeeded, WeekFetch{
		CourseID: s.course.ID,
		Goal:     s.course.Request.Goal,
		Model:    s.course.Request.Model,
		Number:   w.Number,
		Title:    w.Title,
		Concepts: append([]string(nil), w.Concepts...),
	}, nil
}

// CompleteWeekLoad stores a fetched breakdown and expands the week.
// It reports whether the result was applied; a stale course ID or a week
// no longer in the loading state drops the result on the floor.
func (s *Store) CompleteWeekLoad(courseID uuid.UUID, number int, days []Day) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.loadingWeek(courseID, number)
	if w == nil {
		return false
	}
	if days == nil {
		days = []Day{}
	}
	w.Days = days
	w.State = WeekExpanded
	return true
}

// FailWeekLoad reverts a failed fetch to the collapsed, no-data state so
// the user can retry by toggling again.
func (s *Store) FailWeekLoad(courseID uuid.UUID, number int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w := s.loadingWeek(courseID, number); w != nil {
		w.State = WeekCollapsed
	}
}

func (s *Store) loadingWeek(courseID uuid.UUID, number int) *Week {
	if s.course == nil || s.course.ID != courseID {
		return nil
	}
	w := s.course.week(number)
	if w == nil || w.State != WeekLoading {
		return nil
	}
	return w
}

// BeginDayLoad runs the day state machine for a single load action. A day
// load is only valid under an expanded parent week, which also guarantees
// the week's fetch has resolved before any day fetch starts.
func (s *Store) BeginDayLoad(weekNumber, dayNumber int) (DayLoadOutcome, DayFetch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.course == nil {
		return 0, DayFetch{}, ErrNoCourse
	}
	w := s.course.week(weekNumber)
	if w == nil {
		return 0, DayFetch{}, ErrUnknownWeek
	}
	if w.State != WeekExpanded {
		return 0, DayFetch{}, ErrWeekNotExpanded
	}
	d := w.day(dayNumber)
	if d == nil {
		return 0, DayFetch{}, ErrUnknownDay
	}

	switch d.State {
	case DayLoaded:
		return DayAlreadyLoaded, DayFetch{}, nil
	case DayLoading:
		return DayFetchInFlight, DayFetch{}, nil
	}

	d.State = DayLoading
	return DayFetchNeeded, DayFetch{
		CourseID:        s.course.ID,
		Goal:            s.course.Request.Goal,
		Model:           s.course.Request.Model,
		Week:            w.Number,
		Day:             d.Number,
		GlobalDay:       GlobalDayNumber(w.Number, d.Number),
		Title:           d.Title,
		TaskType:        d.TaskType,
		DurationMinutes: d.DurationMinutes,
	}, nil
}

// CompleteDayLoad merges fetched details into the day and marks it loaded.
// Reports whether the result was applied.
func (s *Store) CompleteDayLoad(courseID uuid.UUID, weekNumber, dayNumber int, details *DayDetails) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.loadingDay(courseID, weekNumber, dayNumber)
	if d == nil || details == nil {
		return false
	}
	d.Details = details
	d.State = DayLoaded
	return true
}

// FailDayLoad reverts a failed detail fetch so the click can be repeated.
func (s *Store) FailDayLoad(courseID uuid.UUID, weekNumber, dayNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d := s.loadingDay(courseID, weekNumber, dayNumber); d != nil {
		d.State = DayUnloaded
	}
}

func (s *Store) loadingDay(courseID uuid.UUID, weekNumber, dayNumber int) *Day {
	if s.course == nil || s.course.ID != courseID {
		return nil
	}
	w := s.course.week(weekNumber)
	if w == nil {
		return nil
	}
	d := w.day(dayNumber)
	if d == nil || d.State != DayLoading {
		return nil
	}
	return d
}
