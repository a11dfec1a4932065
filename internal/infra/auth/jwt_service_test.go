package auth

import (
	"testing"
	"time"

	"style/config"
	"style/internal/domain/service"
	"style/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestNewJWTService_TTL(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, tokens.TTL())

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	tokens, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, tokens.TTL())
}

func TestNewJWTServiceWithClock_ExpiresOnInjectedClock(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens, err := NewJWTServiceWithClock(newTestConfig(testSecret, time.Minute), clock.Now)
	require.NoError(t, err)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = tokens.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens := newJWTService(testSecret, time.Hour, clock.Now)
	userID := uuid.New()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens := newJWTService(testSecret, time.Hour, clock.Now)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Minute)
	_, err = tokens.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = tokens.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestJWTService_VerifyInvalidSignature(t *testing.T) {
	issuer := newJWTService("another_secret_key_for_testing_purposes", time.Hour, time.Now)
	verifier := newJWTService(testSecret, time.Hour, time.Now)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalidSignature), "got %v", err)
}

func TestJWTService_VerifyRejectsOtherAlgorithms(t *testing.T) {
	tokens := newJWTService(testSecret, time.Hour, time.Now)
	claims := &service.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(hs512)
	assert.True(t, errors.Is(err, service.ErrTokenInvalidSignature), "got %v", err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(none)
	assert.Error(t, err)
}

func TestJWTService_VerifyMalformed(t *testing.T) {
	tokens := newJWTService(testSecret, time.Hour, time.Now)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := tokens.Verify(token)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), "token %q: got %v", token, err)
	}
}

func TestJWTService_VerifyRequiresExpiry(t *testing.T) {
	tokens := newJWTService(testSecret, time.Hour, time.Now)
	claims := &service.Claims{UserID: uuid.New()}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRequiresUserID(t *testing.T) {
	tokens := newJWTService(testSecret, time.Hour, time.Now)
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}
