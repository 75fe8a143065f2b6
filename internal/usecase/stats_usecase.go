package usecase

import (
	"context"
	"fmt"
	"time"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/logger"
)

// French month names for chart labels, as the dashboard has always shown them.
var (
	frenchMonthsShort = [...]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	}
	frenchMonthsFull = [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
)

// Timestamp layouts accepted for dateCreation. Stored records use the first;
// the rest tolerate hand-imported data.
var creationLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

type statsUsecase struct {
	repo domain.CandidateRepository
}

func NewStatsUsecase(repo domain.CandidateRepository) domain.StatsUsecase {
	return &statsUsecase{repo: repo}
}

func (u *statsUsecase) Registration(ctx context.Context, now time.Time) (*domain.RegistrationStats, error) {
	candidates, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStatistics(candidates, now), nil
}

// ComputeStatistics is a pure function of (records, now): bucket boundaries
// derive from now, so tests inject a fixed instant. A record whose
// dateCreation does not parse is excluded from every date bucket but still
// counted in the categorical breakdowns and the grand total.
func ComputeStatistics(records []domain.Candidate, now time.Time) *domain.RegistrationStats {
	stats := &domain.RegistrationStats{
		Total:       len(records),
		Weekly:      make([]domain.PeriodCount, 0, 4),
		Monthly:     make([]domain.PeriodCount, 0, 6),
		ParObjectif: make(map[domain.Objectif]int, len(domain.Objectifs)),
		ParType:     make(map[domain.TypeCandidat]int, len(domain.TypesCandidat)),
		ParGenre:    make(map[domain.Genre]int, 2),
	}

	// Fixed buckets start at zero so an empty registry still reports the
	// full breakdown shape.
	for _, o := range domain.Objectifs {
		stats.ParObjectif[o] = 0
	}
	for _, t := range domain.TypesCandidat {
		stats.ParType[t] = 0
	}
	stats.ParGenre[domain.GenreHomme] = 0
	stats.ParGenre[domain.GenreFemme] = 0

	// Parse once; nil marks an unparseable creation date.
	creationDates := make([]*time.Time, len(records))
	for i, c := range records {
		if t, ok := parseCreation(c.DateCreation); ok {
			creationDates[i] = &t
		} else {
			logger.L().Debug("unparseable dateCreation excluded from date buckets",
				"candidateID", c.ID, "dateCreation", c.DateCreation)
		}
	}

	countBetween := func(start, end time.Time) int {
		n := 0
		for _, t := range creationDates {
			if t != nil && !t.Before(start) && t.Before(end) {
				n++
			}
		}
		return n
	}

	// Last 4 Monday-start weeks, oldest first.
	thisWeekStart := startOfWeek(now)
	for i := 0; i < 4; i++ {
		weekStart := thisWeekStart.AddDate(0, 0, -7*(3-i))
		weekEnd := weekStart.AddDate(0, 0, 7)
		_, isoWeek := weekStart.ISOWeek()
		stats.Weekly = append(stats.Weekly, domain.PeriodCount{
			Name:  fmt.Sprintf("S%d", isoWeek),
			Count: countBetween(weekStart, weekEnd),
			Label: fmt.Sprintf("%s - %s", formatDayMonth(weekStart), formatDayMonth(weekEnd.AddDate(0, 0, -1))),
		})
	}

	// Last 6 calendar months, oldest first.
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < 6; i++ {
		monthStart := thisMonthStart.AddDate(0, -(5 - i), 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		stats.Monthly = append(stats.Monthly, domain.PeriodCount{
			Name:  frenchMonthsShort[monthStart.Month()-1],
			Count: countBetween(monthStart, monthEnd),
			Label: fmt.Sprintf("%s %d", frenchMonthsFull[monthStart.Month()-1], monthStart.Year()),
		})
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	stats.WeekTotal = countBetween(thisWeekStart, thisWeekStart.AddDate(0, 0, 7))
	stats.MonthTotal = countBetween(thisMonthStart, thisMonthStart.AddDate(0, 1, 0))
	stats.YearTotal = countBetween(yearStart, yearStart.AddDate(1, 0, 0))

	for _, c := range records {
		stats.ParObjectif[c.Objectif]++
		stats.ParType[c.TypeCandidat]++
		stats.ParGenre[c.Genre]++
	}

	return stats
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -daysSinceMonday)
}

func formatDayMonth(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), frenchMonthsShort[t.Month()-1])
}

func parseCreation(value string) (time.Time, bool) {
	for _, layout := range creationLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
