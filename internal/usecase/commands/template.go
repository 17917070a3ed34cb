package commands

import (
	"context"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errs.New("slot template not found")

type TemplateRepository interface {
	Create(ctx context.Context, t *schedule.Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Template, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	// Delete removes the template only. Reservations referencing it are kept
	// as historical records.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateTemplateResult struct {
	ID              uuid.UUID
	DayOfWeek       int
	StartTime       string
	DurationMinutes int
	IsActive        bool
}

type TemplateCommands interface {
	Create(ctx context.Context, dayOfWeek int, startTime string, durationMinutes int) (*CreateTemplateResult, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateCommandsImpl struct {
	repo TemplateRepository
}

func NewTemplateCommands(repo TemplateRepository) TemplateCommands {
	return &templateCommandsImpl{repo: repo}
}

func (c *templateCommandsImpl) Create(ctx context.Context, dayOfWeek int, startTime string, durationMinutes int) (*CreateTemplateResult, error) {
	template, err := schedule.NewTemplate(dayOfWeek, startTime, durationMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, template); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateTemplateResult{
		ID:              template.ID(),
		DayOfWeek:       template.DayOfWeek().Int(),
		StartTime:       template.StartTime().String(),
		DurationMinutes: template.Duration().Minutes(),
		IsActive:        template.IsActive(),
	}, nil
}

func (c *templateCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	if err := c.repo.SetActive(ctx, id, isActive); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *templateCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
