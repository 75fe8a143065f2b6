package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/internal/usecase"
	"candidate-registry-backend/pkg/apperror"
	"candidate-registry-backend/pkg/audit"
	"candidate-registry-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repository
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, patch domain.CandidateUpdate) (*domain.Candidate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	validation.RegisterValidators(validate)
	return validate
}

func validInput() domain.CandidateInput {
	return domain.CandidateInput{
		Nom: "BENALI", Prenom: "Youssef", CIN: "AB123456",
		DateNaissance: "1998-05-15", LieuNaissance: "Rabat",
		Genre: domain.GenreHomme, Adresse: "25 Rue Mohamed V", Arrondissement: "Agdal Riad",
		Telephone: "0612345678", Email: "youssef@example.com",
		TypeCandidat: domain.TypeDiplomeChomage, SituationMatrimoniale: domain.SituationCelibataire,
		NiveauEtude: domain.NiveauSuperieur, TypeDiplome: domain.DiplomeBac3,
		FiliereDiplome: "Informatique", ExperienceGenerale: domain.ExperienceMoins1,
		Langues: []domain.Language{{Name: "Arabe", Level: domain.LevelNatif}},
		Milieu:  domain.MilieuUrbain, SourceInscription: "ANAPEC",
		Objectif: domain.ObjectifEmployabilite, FormationChoisie: "Développement Web",
		Orientation: domain.OrientationInterne, Destination: "Centre de formation",
	}
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCandidateCreateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())
	ctx := context.Background()

	t.Run("Should reject empty input without touching the store", func(t *testing.T) {
		_, err := uc.Create(ctx, domain.CandidateInput{})
		assert.Equal(t, http.StatusUnprocessableEntity, appErrorCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an unknown enum value", func(t *testing.T) {
		input := validInput()
		input.Genre = "Autre"
		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusUnprocessableEntity, appErrorCode(t, err))
	})

	t.Run("Should reject a name with emoji", func(t *testing.T) {
		input := validInput()
		input.Nom = "BENALI 😀"
		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusUnprocessableEntity, appErrorCode(t, err))
	})

	t.Run("Should reject duplicate language names", func(t *testing.T) {
		input := validInput()
		input.Langues = []domain.Language{
			{Name: "Arabe", Level: domain.LevelNatif},
			{Name: "Arabe", Level: domain.LevelCourant},
		}
		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusUnprocessableEntity, appErrorCode(t, err))
	})

	t.Run("Should report field labels in French", func(t *testing.T) {
		input := validInput()
		input.Telephone = "abc"
		_, err := uc.Create(ctx, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Téléphone")
	})

	t.Run("Should pass valid input through to the store", func(t *testing.T) {
		input := validInput()
		created := &domain.Candidate{ID: "CND-1-A", Nom: input.Nom}
		mockRepo.On("Create", ctx, input).Return(created, nil).Once()

		got, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		mockRepo.AssertExpectations(t)
	})
}

func TestCandidateGetMissMapsToNotFound(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "CND-missing").Return(nil, nil).Once()

	_, err := uc.Get(ctx, "CND-missing")
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	assert.Contains(t, err.Error(), "Candidat introuvable")
	mockRepo.AssertExpectations(t)
}

func TestCandidateUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an invalid patch value", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())

		bad := domain.Objectif("Autre chose")
		_, err := uc.Update(ctx, "CND-1-A", domain.CandidateUpdate{Objectif: &bad})
		assert.Equal(t, http.StatusUnprocessableEntity, appErrorCode(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should map a store miss to not found", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())

		patch := domain.CandidateUpdate{}
		mockRepo.On("Update", ctx, "CND-missing", patch).Return(nil, nil).Once()

		_, err := uc.Update(ctx, "CND-missing", patch)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
		mockRepo.AssertExpectations(t)
	})
}

func TestCandidateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report not found for an absent record", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())

		mockRepo.On("Delete", ctx, "CND-missing").Return(false, nil).Once()

		err := uc.Delete(ctx, "CND-missing")
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})

	t.Run("Should succeed when the store removed the record", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())

		mockRepo.On("Delete", ctx, "CND-1-A").Return(true, nil).Once()

		assert.NoError(t, uc.Delete(ctx, "CND-1-A"))
	})
}

func TestCandidateListWrapsStoreFailure(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidate(t), audit.Default())
	ctx := context.Background()

	mockRepo.On("GetAll", ctx).Return(nil, errors.New("disk gone")).Once()

	_, err := uc.List(ctx, domain.CandidateFilter{})
	assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
}
