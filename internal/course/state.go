package course

// WeekState is the disclosure state of a week. A week can never be
// loading and expanded at the same time; whether a collapsed week has
// cached days is carried by Days being non-nil.
type WeekState int

const (
	WeekCollapsed WeekState = iota
	WeekLoading
	WeekExpanded
)

func (s WeekState) String() string {
	switch s {
	case WeekCollapsed:
		return "collapsed"
	case WeekLoading:
		return "loading"
	case WeekExpanded:
		return "expanded"
	}
	return "unknown"
}

// DayState is the load state of a day within a fetched week.
type DayState int

const (
	DayUnloaded DayState = iota
	DayLoading
	DayLoaded
)

func (s DayState) String() string {
	switch s {
	case DayUnloaded:
		return "unloaded"
	case DayLoading:
		return "loading"
	case DayLoaded:
		return "loaded"
	}
	return "unknown"
}
