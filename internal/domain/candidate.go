package domain

import (
	"context"
)

// Language is one spoken-language entry on a candidate record.
// Entries are ordered and names are unique within a record.
type Language struct {
	Name  string        `json:"name" validate:"required"`
	Level LanguageLevel `json:"level" validate:"required,enum"`
}

// CustomField is an operator-defined label/value pair. Order is significant
// and values are free text, never schema-validated.
type CustomField struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

// Candidate is the central registry record. Field order here is the
// canonical serialization order used by every export format.
//
// CIN is business-unique but deliberately not enforced unique by the store:
// the registry accepts re-registrations under the same national ID.
type Candidate struct {
	ID string `json:"id"`

	// Identité — immutable after creation.
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	CIN            string `json:"cin"`
	DateNaissance  string `json:"dateNaissance"`
	LieuNaissance  string `json:"lieuNaissance"`
	Genre          Genre  `json:"genre"`
	Adresse        string `json:"adresse"`
	Arrondissement string `json:"arrondissement"`
	Telephone      string `json:"telephone"`
	Email          string `json:"email"`

	// Classification
	TypeCandidat          TypeCandidat          `json:"typeCandidat"`
	SituationMatrimoniale SituationMatrimoniale `json:"situationMatrimoniale"`
	OccupationMere        string                `json:"occupationMere"`
	OccupationPere        string                `json:"occupationPere"`
	NiveauEtude           NiveauEtude           `json:"niveauEtude"`
	TypeDiplome           TypeDiplome           `json:"typeDiplome"`
	FiliereDiplome        string                `json:"filiereDiplome"`
	ExperienceGenerale    ExperienceGenerale    `json:"experienceGenerale"`

	Langues []Language `json:"langues"`

	// Orientation
	Milieu            Milieu      `json:"milieu"`
	SourceInscription string      `json:"sourceInscription"`
	Objectif          Objectif    `json:"objectif"`
	FormationChoisie  string      `json:"formationChoisie"`
	Orientation       Orientation `json:"orientation"`
	Destination       string      `json:"destination"`
	DateOrientation   string      `json:"dateOrientation,omitempty"`
	Observations      string      `json:"observations,omitempty"`

	CustomFields []CustomField `json:"customFields,omitempty"`

	// Métadonnées — store-assigned, RFC 3339.
	DateCreation     string `json:"dateCreation"`
	DateModification string `json:"dateModification"`
}

// CandidateInput carries every operator-supplied field for record creation.
// ID and the two timestamps are store-assigned and never accepted as input.
type CandidateInput struct {
	Nom            string `json:"nom" validate:"required,valid_name,no_emoji"`
	Prenom         string `json:"prenom" validate:"required,valid_name,no_emoji"`
	CIN            string `json:"cin" validate:"required,max=20"`
	DateNaissance  string `json:"dateNaissance" validate:"required"`
	LieuNaissance  string `json:"lieuNaissance" validate:"required,valid_name"`
	Genre          Genre  `json:"genre" validate:"required,enum"`
	Adresse        string `json:"adresse" validate:"required,max=200"`
	Arrondissement string `json:"arrondissement" validate:"required"`
	Telephone      string `json:"telephone" validate:"required,valid_phone"`
	Email          string `json:"email" validate:"required,email"`

	TypeCandidat          TypeCandidat          `json:"typeCandidat" validate:"required,enum"`
	SituationMatrimoniale SituationMatrimoniale `json:"situationMatrimoniale" validate:"required,enum"`
	OccupationMere        string                `json:"occupationMere" validate:"max=100"`
	OccupationPere        string                `json:"occupationPere" validate:"max=100"`
	NiveauEtude           NiveauEtude           `json:"niveauEtude" validate:"required,enum"`
	TypeDiplome           TypeDiplome           `json:"typeDiplome" validate:"required,enum"`
	FiliereDiplome        string                `json:"filiereDiplome" validate:"required"`
	ExperienceGenerale    ExperienceGenerale    `json:"experienceGenerale" validate:"required,enum"`

	Langues []Language `json:"langues" validate:"required,min=1,unique=Name,dive"`

	Milieu            Milieu      `json:"milieu" validate:"required,enum"`
	SourceInscription string      `json:"sourceInscription" validate:"required"`
	Objectif          Objectif    `json:"objectif" validate:"required,enum"`
	FormationChoisie  string      `json:"formationChoisie" validate:"required"`
	Orientation       Orientation `json:"orientation" validate:"required,enum"`
	Destination       string      `json:"destination" validate:"required"`
	DateOrientation   string      `json:"dateOrientation"`
	Observations      string      `json:"observations" validate:"max=2000"`

	CustomFields []CustomField `json:"customFields" validate:"omitempty,dive"`
}

// CandidateUpdate is the patch shape for edits. Only mutable fields appear:
// identity fields are read-only after creation and the store never merges
// them, so a caller cannot overwrite them even by supplying extra JSON.
// Pointer fields distinguish "absent" from "set to empty".
type CandidateUpdate struct {
	TypeCandidat          *TypeCandidat          `json:"typeCandidat" validate:"omitempty,enum"`
	SituationMatrimoniale *SituationMatrimoniale `json:"situationMatrimoniale" validate:"omitempty,enum"`
	OccupationMere        *string                `json:"occupationMere" validate:"omitempty,max=100"`
	OccupationPere        *string                `json:"occupationPere" validate:"omitempty,max=100"`
	NiveauEtude           *NiveauEtude           `json:"niveauEtude" validate:"omitempty,enum"`
	TypeDiplome           *TypeDiplome           `json:"typeDiplome" validate:"omitempty,enum"`
	FiliereDiplome        *string                `json:"filiereDiplome"`
	ExperienceGenerale    *ExperienceGenerale    `json:"experienceGenerale" validate:"omitempty,enum"`
	Langues               []Language             `json:"langues" validate:"omitempty,unique=Name,dive"`
	Milieu                *Milieu                `json:"milieu" validate:"omitempty,enum"`
	SourceInscription     *string                `json:"sourceInscription"`
	Objectif              *Objectif              `json:"objectif" validate:"omitempty,enum"`
	FormationChoisie      *string                `json:"formationChoisie"`
	Orientation           *Orientation           `json:"orientation" validate:"omitempty,enum"`
	Destination           *string                `json:"destination"`
	DateOrientation       *string                `json:"dateOrientation"`
	Observations          *string                `json:"observations" validate:"omitempty,max=2000"`
	CustomFields          []CustomField          `json:"customFields" validate:"omitempty,dive"`
}

// CandidateRepository is the record store contract. Misses are ordinary
// values (nil record, false bool), never errors: the caller reacts to them,
// it does not recover from them. Errors are reserved for persistence failures.
type CandidateRepository interface {
	Create(ctx context.Context, input CandidateInput) (*Candidate, error)
	GetAll(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Update(ctx context.Context, id string, patch CandidateUpdate) (*Candidate, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CandidateUsecase is the boundary the delivery layer talks to.
type CandidateUsecase interface {
	Create(ctx context.Context, input CandidateInput) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) (*PaginatedResult[Candidate], error)
	Get(ctx context.Context, id string) (*Candidate, error)
	Update(ctx context.Context, id string, patch CandidateUpdate) (*Candidate, error)
	Delete(ctx context.Context, id string) error
}
