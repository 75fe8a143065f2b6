package usecase

import (
	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/textutil"
)

// Query defaults, matching the registry table (10 per page) with the usual
// API safety cap.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Filter returns a new view of records satisfying every constraint in f.
// The free-text search is a case- and diacritic-insensitive substring match
// over nom, prenom, cin, email and telephone; categorical filters are exact
// matches with "all" (or empty) meaning unconstrained. The input slice is
// never mutated.
func Filter(records []domain.Candidate, f domain.CandidateFilter) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(records))
	for _, c := range records {
		if !matchesSearch(c, f.Search) {
			continue
		}
		if !matchesCategory(f.TypeCandidat, string(c.TypeCandidat)) ||
			!matchesCategory(f.Objectif, string(c.Objectif)) ||
			!matchesCategory(f.Genre, string(c.Genre)) ||
			!matchesCategory(f.SourceInscription, c.SourceInscription) ||
			!matchesCategory(f.FormationChoisie, c.FormationChoisie) ||
			!matchesCategory(f.Arrondissement, c.Arrondissement) {
			continue
		}
		result = append(result, c)
	}
	return result
}

func matchesSearch(c domain.Candidate, search string) bool {
	if search == "" {
		return true
	}
	return textutil.ContainsFold(c.Nom, search) ||
		textutil.ContainsFold(c.Prenom, search) ||
		textutil.ContainsFold(c.CIN, search) ||
		textutil.ContainsFold(c.Email, search) ||
		textutil.ContainsFold(c.Telephone, search)
}

func matchesCategory(filter, value string) bool {
	return filter == "" || filter == domain.FilterAll || filter == value
}

// Paginate slices records into the requested 1-indexed page. TotalPages is
// at least 1 even for an empty set; a page beyond range yields empty Data
// and the echoed page number is clamped into [1, TotalPages] so display
// logic never shows an impossible page.
func Paginate(records []domain.Candidate, page, pageSize int) *domain.PaginatedResult[domain.Candidate] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	items := []domain.Candidate{}
	if start < total {
		if end > total {
			end = total
		}
		items = append(items, records[start:end]...)
	}

	echoPage := page
	if echoPage > totalPages {
		echoPage = totalPages
	}

	return &domain.PaginatedResult[domain.Candidate]{
		Data:       items,
		Total:      int64(total),
		Page:       echoPage,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
