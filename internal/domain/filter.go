package domain

// FilterAll is the sentinel a categorical filter uses for "no constraint".
// An empty string means the same thing.
const FilterAll = "all"

// CandidateFilter is the conjunction of constraints the list and export
// endpoints accept. Search is untrusted free text and is only ever matched
// as a plain substring, never interpreted as query syntax.
type CandidateFilter struct {
	Search string `json:"search,omitempty" form:"search"`

	TypeCandidat      string `json:"typeCandidat,omitempty" form:"typeCandidat"`
	Objectif          string `json:"objectif,omitempty" form:"objectif"`
	Genre             string `json:"genre,omitempty" form:"genre"`
	SourceInscription string `json:"sourceInscription,omitempty" form:"sourceInscription"`
	FormationChoisie  string `json:"formationChoisie,omitempty" form:"formationChoisie"`
	Arrondissement    string `json:"arrondissement,omitempty" form:"arrondissement"`

	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// PaginatedResult for list responses.
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
