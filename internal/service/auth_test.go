package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository/mocks"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/token"
)

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("very-secret-key", time.Hour)
	require.NoError(t, err)
	return codec
}

func TestAuthService_Register_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	codec := newTestCodec(t)
	authService, err := service.NewAuthService(mockUserRepo, nil, codec)
	require.NoError(t, err)

	ctx := context.Background()
	username := "alice"
	password := "pw1"

	mockUserRepo.On("FindByUsername", ctx, username).
		Return(nil, repository.ErrUserNotFound).
		Once()

	mockUserRepo.On("Save", ctx, mock.MatchedBy(func(user *domain.User) bool {
		assert.Equal(t, username, user.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)),
			"password should be stored hashed")
		return true
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 5
		}).
		Return(nil).
		Once()

	signed, userID, err := authService.Register(ctx, username, password)

	require.NoError(t, err)
	assert.Equal(t, uint(5), userID)
	require.NotEmpty(t, signed, "registration should issue a token")

	// The issued token must assert the registered identity.
	ident, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(5), ident.UserID)
	assert.Equal(t, username, ident.Claims["username"])

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService, _ := service.NewAuthService(mockUserRepo, nil, newTestCodec(t))
	ctx := context.Background()
	username := "existingUser"

	existingUser := &domain.User{ID: 10, Username: username}
	mockUserRepo.On("FindByUsername", ctx, username).Return(existingUser, nil).Once()

	_, _, err := authService.Register(ctx, username, "password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrRegistrationFailed))

	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_SaveFails_DuplicateEntry(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService, _ := service.NewAuthService(mockUserRepo, nil, newTestCodec(t))
	ctx := context.Background()
	username := "anotherNewUser"

	mockUserRepo.On("FindByUsername", ctx, username).Return(nil, repository.ErrUserNotFound).Once()
	mockUserRepo.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry).Once()

	_, _, err := authService.Register(ctx, username, "password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrRegistrationFailed))

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	codec := newTestCodec(t)
	authService, _ := service.NewAuthService(mockUserRepo, nil, codec)
	ctx := context.Background()
	username := "testuser"
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userInDb := &domain.User{ID: 1, Username: username, Password: string(hashedPassword)}

	mockUserRepo.On("FindByUsername", ctx, username).Return(userInDb, nil).Once()

	signed, err := authService.Login(ctx, username, password)

	require.NoError(t, err)
	require.NotEmpty(t, signed)

	ident, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(1), ident.UserID, "token user id must match the stored row")

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService, _ := service.NewAuthService(mockUserRepo, nil, newTestCodec(t))
	ctx := context.Background()
	username := "nonexistent"

	mockUserRepo.On("FindByUsername", ctx, username).Return(nil, repository.ErrUserNotFound).Once()

	signed, err := authService.Login(ctx, username, "password")

	require.Error(t, err)
	assert.Empty(t, signed, "no token may be issued on a failed login")
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed))

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_IncorrectPassword(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService, _ := service.NewAuthService(mockUserRepo, nil, newTestCodec(t))
	ctx := context.Background()
	username := "testuser"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userInDb := &domain.User{ID: 1, Username: username, Password: string(hashedPassword)}

	mockUserRepo.On("FindByUsername", ctx, username).Return(userInDb, nil).Once()

	signed, err := authService.Login(ctx, username, "wrongpassword")

	require.Error(t, err)
	assert.Empty(t, signed, "no token may be issued on a failed login")
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed))

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_DisplayName_CacheHit(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockNames := new(mocks.NameCache)
	authService, _ := service.NewAuthService(mockUserRepo, mockNames, newTestCodec(t))
	ctx := context.Background()

	mockNames.On("GetUsername", ctx, uint(1)).Return("alice", nil).Once()

	name, err := authService.DisplayName(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	mockNames.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthService_DisplayName_CacheMissFillsCache(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockNames := new(mocks.NameCache)
	authService, _ := service.NewAuthService(mockUserRepo, mockNames, newTestCodec(t))
	ctx := context.Background()

	mockNames.On("GetUsername", ctx, uint(1)).Return("", repository.ErrNotFound).Once()
	mockUserRepo.On("FindByID", ctx, uint(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()
	mockNames.On("SetUsername", ctx, uint(1), "alice").Return(nil).Once()

	name, err := authService.DisplayName(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	mockNames.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_DisplayName_UnknownUser(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService, _ := service.NewAuthService(mockUserRepo, nil, newTestCodec(t))
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound).Once()

	_, err := authService.DisplayName(ctx, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))

	mockUserRepo.AssertExpectations(t)
}
