package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue("secret", "teacher-1", "TEACHER", time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", claims.TeacherID)
	assert.Equal(t, "TEACHER", claims.Role)
}

func TestParse_Failures(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		raw, err := Issue("secret", "teacher-1", "TEACHER", -time.Minute)
		require.NoError(t, err)

		_, err = Parse("secret", raw)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := Issue("secret", "teacher-1", "TEACHER", time.Hour)
		require.NoError(t, err)

		_, err = Parse("other", raw)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrExpired)
	})

	t.Run("missing teacher id", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "TEACHER",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = Parse("secret", raw)
		assert.Error(t, err)
	})

	t.Run("empty secret cannot sign", func(t *testing.T) {
		_, err := Issue("", "teacher-1", "TEACHER", time.Hour)
		assert.Error(t, err)
	})
}
