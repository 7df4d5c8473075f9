package course

import "github.com/google/uuid"

// DaysPerWeek is the fixed week length used for global day numbering.
const DaysPerWeek = 7

// GenerationRequest records the parameters a course was generated from.
// Week and day fetches reuse them verbatim.
type GenerationRequest struct {
	Goal  string `json:"goal"`
	Model string `json:"model"`
}

// Course is the top-level course document returned by the outline endpoint.
// It is owned exclusively by the Store and replaced wholesale on each new
// generation; there is no merging of outlines.
type Course struct {
	ID            uuid.UUID         `json:"-"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Prerequisites []string          `json:"prerequisites"`
	Weeks         []Week            `json:"weeks"`
	Request       GenerationRequest `json:"-"`
}

// Week is one week of the course outline. Days is nil until the week's
// daily breakdown has been fetched once; after that it never changes
// length or numbering for the lifetime of the course.
type Week struct {
	Number   int       `json:"week"`
	Title    string    `json:"title"`
	Focus    string    `json:"focus"`
	Concepts []string  `json:"concepts"`
	State    WeekState `json:"-"`
	Days     []Day     `json:"-"`
}

// Day is a single day within a week's breakdown. Details is nil until the
// day's content has been fetched; once set it is never re-fetched.
type Day struct {
	Number          int         `json:"day"`
	Title           string      `json:"title"`
	Concepts        []string    `json:"concepts"`
	TaskType        string      `json:"task_type"`
	DurationMinutes int         `json:"duration_minutes"`
	State           DayState    `json:"-"`
	Details         *DayDetails `json:"-"`
}

// DayDetails is the on-demand content of a single day.
type DayDetails struct {
	Description     string     `json:"description"`
	TableOfContents []string   `json:"table_of_contents"`
	Resources       []Resource `json:"resources"`
}

// Resource is a learning resource attached to a loaded day.
type Resource struct {
	Source      string `json:"source"` // "youtube" or "web"
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// GlobalDayNumber converts a (week, day) pair into the course-wide day
// number the backend expects: week 2, day 3 is day 10.
func GlobalDayNumber(week, day int) int {
	return (week-1)*DaysPerWeek + day
}

// Week lookup is by week number, not slice index; the backend numbers
// weeks itself and nothing guarantees they start at 1 or are contiguous.
func (c *Course) week(number int) *Week {
	for i := range c.Weeks {
		if c.Weeks[i].Number == number {
			return &c.Weeks[i]
		}
	}
	return nil
}

func (w *Week) day(number int) *Day {
	for i := range w.Days {
		if w.Days[i].Number == number {
			return &w.Days[i]
		}
	}
	return nil
}

// Expanded reports whether the week is currently disclosed.
func (w Week) Expanded() bool { return w.State == WeekExpanded }

// Loading reports whether the week's breakdown fetch is in flight.
func (w Week) Loading() bool { return w.State == WeekLoading }

// HasDays reports whether the week's breakdown has ever been fetched.
func (w Week) HasDays() bool { return w.Days != nil }

// Loaded reports whether the day's detail content is present.
func (d Day) Loaded() bool { return d.State == DayLoaded }

// Loading reports whether the day's detail fetch is in flight.
func (d Day) Loading() bool { return d.State == DayLoading }

// Clone returns a deep copy of the course, safe to render while the
// original keeps mutating under the store's lock.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Prerequisites = append([]string(nil), c.Prerequisites...)
	out.Weeks = make([]Week, len(c.Weeks))
	for i, w := range c.Weeks {
		cw := w
		cw.Concepts = append([]string(nil), w.Concepts...)
		if w.Days != nil {
			cw.Days = make([]Day, len(w.Days))
			for j, d := range w.Days {
				cd := d
				cd.Concepts = append([]string(nil), d.Concepts...)
				if d.Details != nil {
					det := *d.Details
					det.TableOfContents = append([]string(nil), d.Details.TableOfContents...)
					det.Resources = append([]Resource(nil), d.Details.Resources...)
					cd.Details = &det
				}
				cw.Days[j] = cd
			}
		}
		out.Weeks[i] = cw
	}
	return &out
}
