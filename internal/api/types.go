package api

// HealthStatus is the decoded backend health report.
type HealthStatus struct {
	Connected    bool
	OllamaStatus string
	OllamaURL    string
	Detail       string
}

// Model is one locally installed model as reported by the backend.
type Model struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at"`
}

// WeekRequest is the body of a week-breakdown generation call.
type WeekRequest struct {
	Goal       string   `json:"goal"`
	WeekNumber int      `json:"week_number"`
	WeekTitle  string   `json:"week_title"`
	Concepts   []string `json:"concepts"`
	Model      string   `json:"model,omitempty"`
}

// DayRequest is the body of a day-detail generation call. DayNumber is the
// course-wide day number, not the day's position within its week.
type DayRequest struct {
	Goal            string `json:"goal"`
	DayTitle        string `json:"day_title"`
	DayNumber       int    `json:"day_number"`
	DurationMinutes int    `json:"duration_minutes"`
	TaskType        string `json:"task_type"`
	Model           string `json:"model,omitempty"`
}
