package domain

type SessionState string

const (
	StatePlanning      SessionState = "planning"
	StateRoadmapReview SessionState = "roadmap_review"
	StateLocked        SessionState = "locked"
)

type Strategy string

const (
	StrategyBalanced   Strategy = "balanced"
	StrategyAggressive Strategy = "aggressive"
	StrategyRelaxed    Strategy = "relaxed"
)

// ValidStrategies is the canonical set of accepted strategy strings.
var ValidStrategies = map[string]bool{
	"balanced": true, "aggressive": true, "relaxed": true,
}

type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
)

// Weekdays lists the teaching days in calendar order.
var Weekdays = []Weekday{Mon, Tue, Wed, Thu, Fri}

// ValidWeekdays is the canonical set of accepted day strings.
var ValidWeekdays = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true, "Fri": true,
}

type RegistrationStatus string

const (
	RegStatusRegistered RegistrationStatus = "Registered"
	RegStatusPlanned    RegistrationStatus = "Planned"
)
