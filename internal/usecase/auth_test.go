//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"portfolio-api/internal/domain/user"
	"portfolio-api/internal/pkg/jwt"
	"portfolio-api/internal/pkg/password"
	"portfolio-api/internal/usecase"
	"portfolio-api/tests/common/builder"
	usecasemock "portfolio-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockReads *usecasemock.MockUserReadStore
	mockRepo  *usecasemock.MockUserRepository
	useCase   usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReads = usecasemock.NewMockUserReadStore(s.mockCtrl)
	s.mockRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.useCase = usecase.NewAuthUseCase(s.mockReads, s.mockRepo, jwt.NewService("test-secret", time.Hour))
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) credentials(pass string) user.Credentials {
	creds, err := user.NewCredentials("admin@example.com", pass)
	s.Require().NoError(err)
	return creds
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	plaintext := "password123"
	hash, err := password.Hash(plaintext)
	s.Require().NoError(err)

	s.Run("success: returns a token and the user view", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.mockReads.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(view, hash, nil).Times(1)
		s.mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(nil).Times(1)

		token, got, err := s.useCase.Login(context.Background(), s.credentials(plaintext))

		s.NoError(err)
		s.NotEmpty(token)
		s.Equal(view.Email, got.Email)
	})

	s.Run("error: unknown email", func() {
		s.mockReads.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(nil, "", usecase.ErrUserNotFound).Times(1)

		_, _, err := s.useCase.Login(context.Background(), s.credentials(plaintext))
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: wrong password", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.mockReads.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(view, hash, nil).Times(1)

		_, _, err := s.useCase.Login(context.Background(), s.credentials("wrongpassword"))
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockReads.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(view, hash, nil).Times(1)

		_, _, err := s.useCase.Login(context.Background(), s.credentials(plaintext))
		s.ErrorIs(err, usecase.ErrUserInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	s.Run("success", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.mockReads.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.useCase.GetCurrentUser(context.Background(), view.ID)

		s.NoError(err)
		s.Equal(view.Email, got.Email)
	})

	s.Run("error: unknown user", func() {
		id := uuid.New()
		s.mockReads.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		_, err := s.useCase.GetCurrentUser(context.Background(), id)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: inactive user", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockReads.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.useCase.GetCurrentUser(context.Background(), view.ID)
		s.ErrorIs(err, usecase.ErrUserInactive)
	})
}
