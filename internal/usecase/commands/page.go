package commands

import (
	"context"
	"strings"

	"portfolio-api/internal/pkg/errs"
)

type PageRepository interface {
	Upsert(ctx context.Context, path string, isEnabled bool, redirectTo *string) error
}

type PageCommands interface {
	// Set enables or disables a path, optionally pointing a redirect target
	// used when the page is disabled.
	Set(ctx context.Context, path string, isEnabled bool, redirectTo *string) error
}

type pageCommandsImpl struct {
	repo PageRepository
}

func NewPageCommands(repo PageRepository) PageCommands {
	return &pageCommandsImpl{repo: repo}
}

func (c *pageCommandsImpl) Set(ctx context.Context, path string, isEnabled bool, redirectTo *string) error {
	if !strings.HasPrefix(path, "/") {
		return errs.Mark(errs.New("page path must start with /"), ErrDomainValidation)
	}
	if redirectTo != nil && !strings.HasPrefix(*redirectTo, "/") {
		return errs.Mark(errs.New("redirect target must start with /"), ErrDomainValidation)
	}

	if err := c.repo.Upsert(ctx, path, isEnabled, redirectTo); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
