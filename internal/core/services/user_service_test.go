package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/core/services"
	"github.com/efileconnect/efc_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "user-1",
		Name:         "Pat Uploader",
		Email:        "pat@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAccountant,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.activeUser("s3cret-pass")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "pat@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "pat@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("s3cret-pass")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "pat@example.com").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "pat@example.com", "wrong")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	// Same failure shape as a wrong password; no account enumeration.
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser("s3cret-pass")
	user.IsActive = false

	suite.mockUserRepo.On("FindUserByEmail", ctx, "pat@example.com").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "pat@example.com", "s3cret-pass")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_SoftDeletedUser() {
	ctx := context.Background()
	user := suite.activeUser("s3cret-pass")
	deletedAt := time.Now()
	user.DeletedAt = &deletedAt

	suite.mockUserRepo.On("FindUserByEmail", ctx, "pat@example.com").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "pat@example.com", "s3cret-pass")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, "nope")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
