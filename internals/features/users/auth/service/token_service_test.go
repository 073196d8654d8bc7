package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "ucentric_backend/internals/features/users/users/model"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	ts := NewTokenService("s3cret", 2*time.Hour)
	u := &userModel.UserModel{ID: uuid.New(), Name: "Budi", Email: "budi@ucentric.id", Role: "user"}

	token, exp, err := ts.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.ID)
	assert.Equal(t, "Budi", claims.Name)
	assert.Equal(t, "budi@ucentric.id", claims.Email)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	ts := NewTokenService("s3cret", time.Minute)
	ts.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := ts.Issue(&userModel.UserModel{ID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsForeignSecretAndAlgorithm(t *testing.T) {
	ts := NewTokenService("s3cret", time.Minute)
	other := NewTokenService("other", time.Minute)

	token, _, err := other.Issue(&userModel.UserModel{ID: uuid.New(), Role: "user"})
	require.NoError(t, err)
	_, err = ts.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: uuid.NewString()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ts.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_EmptySecret(t *testing.T) {
	ts := NewTokenService("", time.Minute)
	_, _, err := ts.Issue(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}
