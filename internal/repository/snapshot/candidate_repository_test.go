package snapshot_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/internal/repository/snapshot"
	"candidate-registry-backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput(nom string) domain.CandidateInput {
	return domain.CandidateInput{
		Nom:            nom,
		Prenom:         "Youssef",
		CIN:            "AB123456",
		DateNaissance:  "1998-05-15",
		LieuNaissance:  "Rabat",
		Genre:          domain.GenreHomme,
		Adresse:        "25 Rue Mohamed V",
		Arrondissement: "Agdal Riad",
		Telephone:      "0612345678",
		Email:          "youssef@example.com",

		TypeCandidat:          domain.TypeDiplomeChomage,
		SituationMatrimoniale: domain.SituationCelibataire,
		OccupationMere:        "Enseignante",
		OccupationPere:        "Commerçant",
		NiveauEtude:           domain.NiveauSuperieur,
		TypeDiplome:           domain.DiplomeBac3,
		FiliereDiplome:        "Informatique",
		ExperienceGenerale:    domain.ExperienceMoins1,

		Langues: []domain.Language{
			{Name: "Arabe", Level: domain.LevelNatif},
			{Name: "Français", Level: domain.LevelCourant},
		},

		Milieu:            domain.MilieuUrbain,
		SourceInscription: "ANAPEC",
		Objectif:          domain.ObjectifEmployabilite,
		FormationChoisie:  "Développement Web",
		Orientation:       domain.OrientationInterne,
		Destination:       "Centre de formation",
		DateOrientation:   "2024-01-15",
		Observations:      "Candidat motivé.",
	}
}

func newRepo(t *testing.T) (domain.CandidateRepository, *kvstore.Memory) {
	t.Helper()
	store := kvstore.NewMemory()
	return snapshot.NewCandidateRepository(store, ""), store
}

func TestCreateThenGetByID(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, strings.HasPrefix(created.ID, "CND-"))
	assert.NotEmpty(t, created.DateCreation)
	assert.Equal(t, created.DateCreation, created.DateModification)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestGetAllEmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	names := []string{"ALAMI", "BERRADA", "CHAKIR", "DRISSI"}
	for _, n := range names {
		_, err := repo.Create(ctx, sampleInput(n))
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, n := range names {
		assert.Equal(t, n, all[i].Nom)
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c, err := repo.Create(ctx, sampleInput("BENALI"))
		require.NoError(t, err)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestGetByIDMissReturnsNilNil(t *testing.T) {
	repo, _ := newRepo(t)

	got, err := repo.GetByID(context.Background(), "CND-404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMergesMutableFieldsOnly(t *testing.T) {
	store := kvstore.NewMemory()
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := snapshot.NewCandidateRepositoryWithClock(store, "", func() time.Time { return clock })
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)

	objectif := domain.ObjectifFormation
	observations := "Réorienté vers la formation."
	updated, err := repo.Update(ctx, created.ID, domain.CandidateUpdate{
		Objectif:     &objectif,
		Observations: &observations,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.DateCreation, updated.DateCreation)
	assert.Greater(t, updated.DateModification, updated.DateCreation)

	assert.Equal(t, domain.ObjectifFormation, updated.Objectif)
	assert.Equal(t, observations, updated.Observations)

	// untouched fields survive
	assert.Equal(t, created.Nom, updated.Nom)
	assert.Equal(t, created.Langues, updated.Langues)
}

func TestUpdateModificationDateIncreases(t *testing.T) {
	store := kvstore.NewMemory()
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := snapshot.NewCandidateRepositoryWithClock(store, "", func() time.Time { return clock })
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)

	previous := created.DateModification
	dest := "Incubateur"
	for i := 0; i < 3; i++ {
		clock = clock.Add(time.Second)
		updated, err := repo.Update(ctx, created.ID, domain.CandidateUpdate{Destination: &dest})
		require.NoError(t, err)
		assert.Greater(t, updated.DateModification, previous)
		previous = updated.DateModification
	}
}

func TestUpdateUnknownIDLeavesSetUnchanged(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)
	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	dest := "Incubateur"
	updated, err := repo.Update(ctx, "CND-404", domain.CandidateUpdate{Destination: &dest})
	require.NoError(t, err)
	assert.Nil(t, updated)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteTwice(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

// failingStore wraps Memory and fails every Save once armed, to verify a
// persistence failure leaves the committed snapshot intact.
type failingStore struct {
	*kvstore.Memory
	fail bool
}

func (f *failingStore) Save(ctx context.Context, key string, data []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Save(ctx, key, data)
}

func TestPersistenceFailureKeepsPriorSnapshot(t *testing.T) {
	store := &failingStore{Memory: kvstore.NewMemory()}
	repo := snapshot.NewCandidateRepository(store, "")
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleInput("BENALI"))
	require.NoError(t, err)

	store.fail = true

	_, err = repo.Create(ctx, sampleInput("CHAKIR"))
	assert.Error(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	assert.Error(t, err)
	assert.False(t, removed)

	store.fail = false
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}
