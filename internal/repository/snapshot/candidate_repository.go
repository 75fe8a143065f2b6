// Package snapshot implements the candidate record store over a one-key
// kvstore snapshot: the entire record set is serialized as a JSON array and
// rewritten on every mutation. Insertion order is the array order and is the
// registry's only ordering guarantee.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/kvstore"

	"github.com/google/uuid"
)

// DefaultKey matches the storage key the registry has always used.
const DefaultKey = "candidates_db"

// iso8601Millis mirrors the timestamp format already present in stored data.
const iso8601Millis = "2006-01-02T15:04:05.000Z07:00"

type candidateRepository struct {
	store kvstore.Store
	key   string
	now   func() time.Time
}

// NewCandidateRepository builds the record store on top of the given snapshot
// backend. key selects the namespaced storage key; empty means DefaultKey.
func NewCandidateRepository(store kvstore.Store, key string) domain.CandidateRepository {
	if key == "" {
		key = DefaultKey
	}
	return &candidateRepository{
		store: store,
		key:   key,
		now:   time.Now,
	}
}

// NewCandidateRepositoryWithClock is the test constructor: it injects the
// clock used for IDs and timestamps.
func NewCandidateRepositoryWithClock(store kvstore.Store, key string, now func() time.Time) domain.CandidateRepository {
	repo := NewCandidateRepository(store, key).(*candidateRepository)
	repo.now = now
	return repo
}

// generateID returns an ID unique for the store's lifetime: creation instant
// in milliseconds plus a random suffix to survive same-millisecond creates.
func (r *candidateRepository) generateID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("CND-%d-%s", r.now().UnixMilli(), suffix)
}

func (r *candidateRepository) readAll(ctx context.Context) ([]domain.Candidate, error) {
	data, found, err := r.store.Load(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !found {
		// Never-written key is an empty registry, not an error.
		return []domain.Candidate{}, nil
	}

	var candidates []domain.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("snapshot: corrupt candidate snapshot: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) writeAll(ctx context.Context, candidates []domain.Candidate) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("snapshot: encode candidate snapshot: %w", err)
	}
	if err := r.store.Save(ctx, r.key, data); err != nil {
		return fmt.Errorf("snapshot: persist candidate snapshot: %w", err)
	}
	return nil
}

func (r *candidateRepository) Create(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	candidates, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC().Format(iso8601Millis)
	candidate := domain.Candidate{
		ID:             r.generateID(),
		Nom:            input.Nom,
		Prenom:         input.Prenom,
		CIN:            input.CIN,
		DateNaissance:  input.DateNaissance,
		LieuNaissance:  input.LieuNaissance,
		Genre:          input.Genre,
		Adresse:        input.Adresse,
		Arrondissement: input.Arrondissement,
		Telephone:      input.Telephone,
		Email:          input.Email,

		TypeCandidat:          input.TypeCandidat,
		SituationMatrimoniale: input.SituationMatrimoniale,
		OccupationMere:        input.OccupationMere,
		OccupationPere:        input.OccupationPere,
		NiveauEtude:           input.NiveauEtude,
		TypeDiplome:           input.TypeDiplome,
		FiliereDiplome:        input.FiliereDiplome,
		ExperienceGenerale:    input.ExperienceGenerale,

		Langues: input.Langues,

		Milieu:            input.Milieu,
		SourceInscription: input.SourceInscription,
		Objectif:          input.Objectif,
		FormationChoisie:  input.FormationChoisie,
		Orientation:       input.Orientation,
		Destination:       input.Destination,
		DateOrientation:   input.DateOrientation,
		Observations:      input.Observations,

		CustomFields: input.CustomFields,

		DateCreation:     now,
		DateModification: now,
	}

	candidates = append(candidates, candidate)
	if err := r.writeAll(ctx, candidates); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	return r.readAll(ctx)
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidates, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == id {
			c := candidates[i]
			return &c, nil
		}
	}
	return nil, nil
}

// Update merges the patch over the stored record field by field. Identity
// fields, the ID and dateCreation are not in the whitelist, so they survive
// any caller-supplied value. A miss returns (nil, nil) with the set untouched.
func (r *candidateRepository) Update(ctx context.Context, id string, patch domain.CandidateUpdate) (*domain.Candidate, error) {
	candidates, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range candidates {
		if candidates[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	c := &candidates[index]
	applyPatch(c, patch)

	// Clock collisions may leave dateModification equal to its prior value;
	// it never moves backwards past dateCreation.
	c.DateModification = r.now().UTC().Format(iso8601Millis)
	if c.DateModification < c.DateCreation {
		c.DateModification = c.DateCreation
	}

	if err := r.writeAll(ctx, candidates); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

func applyPatch(c *domain.Candidate, patch domain.CandidateUpdate) {
	if patch.TypeCandidat != nil {
		c.TypeCandidat = *patch.TypeCandidat
	}
	if patch.SituationMatrimoniale != nil {
		c.SituationMatrimoniale = *patch.SituationMatrimoniale
	}
	if patch.OccupationMere != nil {
		c.OccupationMere = *patch.OccupationMere
	}
	if patch.OccupationPere != nil {
		c.OccupationPere = *patch.OccupationPere
	}
	if patch.NiveauEtude != nil {
		c.NiveauEtude = *patch.NiveauEtude
	}
	if patch.TypeDiplome != nil {
		c.TypeDiplome = *patch.TypeDiplome
	}
	if patch.FiliereDiplome != nil {
		c.FiliereDiplome = *patch.FiliereDiplome
	}
	if patch.ExperienceGenerale != nil {
		c.ExperienceGenerale = *patch.ExperienceGenerale
	}
	if patch.Langues != nil {
		c.Langues = patch.Langues
	}
	if patch.Milieu != nil {
		c.Milieu = *patch.Milieu
	}
	if patch.SourceInscription != nil {
		c.SourceInscription = *patch.SourceInscription
	}
	if patch.Objectif != nil {
		c.Objectif = *patch.Objectif
	}
	if patch.FormationChoisie != nil {
		c.FormationChoisie = *patch.FormationChoisie
	}
	if patch.Orientation != nil {
		c.Orientation = *patch.Orientation
	}
	if patch.Destination != nil {
		c.Destination = *patch.Destination
	}
	if patch.DateOrientation != nil {
		c.DateOrientation = *patch.DateOrientation
	}
	if patch.Observations != nil {
		c.Observations = *patch.Observations
	}
	if patch.CustomFields != nil {
		c.CustomFields = patch.CustomFields
	}
}

func (r *candidateRepository) Delete(ctx context.Context, id string) (bool, error) {
	candidates, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	filtered := candidates[:0:0]
	for _, c := range candidates {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(candidates) {
		// Deleting an absent record is a no-op, reported as such.
		return false, nil
	}

	if err := r.writeAll(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}
