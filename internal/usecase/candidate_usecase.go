package usecase

import (
	"context"
	"strings"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/apperror"
	"candidate-registry-backend/pkg/audit"
	"candidate-registry-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	audit    *audit.Logger
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, auditLog *audit.Logger) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
		audit:    auditLog,
	}
}

func (u *candidateUsecase) Create(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.UnprocessableEntity(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	candidate, err := u.repo.Create(ctx, input)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.audit.Record(audit.EventRecordCreated, candidate.ID,
		zap.String("cin", candidate.CIN),
		zap.String("objectif", string(candidate.Objectif)))
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) (*domain.PaginatedResult[domain.Candidate], error) {
	candidates, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := Filter(candidates, filter)
	return Paginate(filtered, filter.Page, filter.PageSize), nil
}

func (u *candidateUsecase) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidat introuvable")
	}
	return candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, id string, patch domain.CandidateUpdate) (*domain.Candidate, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.UnprocessableEntity(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	candidate, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidat introuvable")
	}

	u.audit.Record(audit.EventRecordUpdated, candidate.ID)
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !removed {
		return apperror.NotFound("Candidat introuvable")
	}

	u.audit.Record(audit.EventRecordDeleted, id)
	return nil
}
