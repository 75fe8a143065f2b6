package domain

import (
	"context"
	"time"
)

// PeriodCount is one dated histogram bucket. Name is the short axis label
// ("S37", "sept."), Label the full human-readable range shown in tooltips.
type PeriodCount struct {
	Name  string `json:"name"`
	Count int    `json:"inscriptions"`
	Label string `json:"label"`
}

// RegistrationStats is the dashboard summary, a pure function of the record
// set and the clock instant it was computed at.
type RegistrationStats struct {
	Total int `json:"total"`

	// Last 4 Monday-start weeks and last 6 calendar months, oldest first.
	Weekly  []PeriodCount `json:"weekly"`
	Monthly []PeriodCount `json:"monthly"`

	WeekTotal  int `json:"weekTotal"`
	MonthTotal int `json:"monthTotal"`
	YearTotal  int `json:"yearTotal"`

	ParObjectif map[Objectif]int     `json:"parObjectif"`
	ParType     map[TypeCandidat]int `json:"parType"`
	ParGenre    map[Genre]int        `json:"parGenre"`
}

// StatsUsecase computes the dashboard summary over the full record set.
type StatsUsecase interface {
	Registration(ctx context.Context, now time.Time) (*RegistrationStats, error)
}
