package services

import (
	"context"
	"testing"
	"time"

	"tagalong/internal/config"
	"tagalong/internal/models"
	"tagalong/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAuthFixture(t *testing.T) (AuthService, *store.UserStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("tagalong123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := store.NewUserStore([]*models.User{
		{
			ID:       "u1",
			Name:     "Arjun Reddy",
			Email:    "arjun@tagalong.in",
			Password: string(hash),
			Status:   models.UserStatusActive,
		},
	})

	security := &config.SecurityConfig{
		JWTSecret:         testJWTSecret,
		JWTAccessTokenTTL: time.Hour,
	}
	return NewAuthService(users, security, testLogger(t)), users
}

func TestSignInIssuesValidToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	resp, err := auth.SignIn(context.Background(), &SignInRequest{
		Email:    "arjun@tagalong.in",
		Password: "tagalong123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "u1", resp.User.ID)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "u1", claims.UserID)
}

func TestSignInEmailIsCaseInsensitive(t *testing.T) {
	auth, _ := newAuthFixture(t)

	resp, err := auth.SignIn(context.Background(), &SignInRequest{
		Email:    "ARJUN@tagalong.in",
		Password: "tagalong123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignIn(ctx, &SignInRequest{Email: "arjun@tagalong.in", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email reports the same error as a wrong password.
	_, err = auth.SignIn(ctx, &SignInRequest{Email: "nobody@tagalong.in", Password: "tagalong123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpAndSignInRoundTrip(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	resp, err := auth.SignUp(ctx, &SignUpRequest{
		Name:     "Sneha Patel",
		Email:    "sneha@tagalong.in",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Sneha Patel", resp.User.Name)

	stored, err := users.GetByEmail("sneha@tagalong.in")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.Password)

	signin, err := auth.SignIn(ctx, &SignInRequest{Email: "sneha@tagalong.in", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, signin.User.ID)
}

func TestSignUpRejectsTakenEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.SignUp(context.Background(), &SignUpRequest{
		Name:     "Imposter",
		Email:    "arjun@tagalong.in",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpValidation(t *testing.T) {
	auth, _ := newAuthFixture(t)

	// Password shorter than eight characters fails validation.
	_, err := auth.SignUp(context.Background(), &SignUpRequest{
		Name:     "Sneha Patel",
		Email:    "sneha@tagalong.in",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestGetUserReturnsPublicProfile(t *testing.T) {
	auth, _ := newAuthFixture(t)

	profile, err := auth.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Reddy", profile.Name)

	_, err = auth.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCurrentUserRequiresAuthentication(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	user, err := auth.CurrentUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "arjun@tagalong.in", user.Email)
}
