package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository/mocks"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

func newTestAuthenticator(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: userRepo,
		cfg: &config.Config{
			Auth: config.Auth{Secret: "segredo-de-teste"},
		},
	}

	return service, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           3,
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Active:       true,
	}
}

func TestLoginUserReturnsValidToken(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(t, "senha123"), nil)

	token, err := service.LoginUser("  Maria@Example.com ", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "maria@example.com", claims.UserEmail)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(t, "senha123"), nil)

	_, err := service.LoginUser("maria@example.com", "senha-errada")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabledAccount(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	user := activeUser(t, "senha123")
	user.Active = false
	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

	_, err := service.LoginUser("maria@example.com", "senha123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
}

func TestLoginUserNotFound(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("alguem@example.com").Return(nil, nil)

	_, err := service.LoginUser("alguem@example.com", "senha123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
}

func TestLoginUserMissingData(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.LoginUser("", "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateUserHashesPasswordAndActivates(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("joao@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
		func(user *domain.User) (*domain.User, error) {
			assert.True(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
			user.ID = 10
			return user, nil
		},
	)

	created, err := service.CreateUser(&domain.User{
		Name:         "João",
		Email:        " Joao@Example.com ",
		PasswordHash: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "joao@example.com", created.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(t, "senha123"), nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: "senha123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(t, "senha123"), nil)

	token, err := service.LoginUser("maria@example.com", "senha123")
	require.NoError(t, err)

	service.cfg.Auth.Secret = "outro-segredo"
	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestHandleEmailNormalization(t *testing.T) {
	assert.Equal(t, "ana@example.com", handleEmail("  Ana@Example.COM "))
	assert.Equal(t, "ana@example.com", handleEmail("a na@example.com"))
}
