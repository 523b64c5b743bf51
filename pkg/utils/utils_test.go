package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "retail-backend")
	userID, session := uuid.New(), uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := m.Issue(userID, session, time.Now().Add(time.Hour))
		require.NoError(t, err)

		gotUser, gotSession, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, session, gotSession)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := m.Issue(userID, session, time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, _, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour, "retail-backend")
		token, err := other.Issue(userID, session, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, _, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := m.Parse("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Password123?")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123?", hash)
	assert.True(t, CheckPasswordHash("Password123?", hash))
	assert.False(t, CheckPasswordHash("password123?", hash))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,password"`
		Type     string `json:"type" validate:"omitempty,oneof=customer shop"`
	}

	errs := ValidateStruct(payload{Email: "nope", Password: "abcdefgh", Type: "admin"})
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Password must contain letters and digits", errs["password"])
	assert.Equal(t, "Must be one of: customer, shop", errs["type"])

	assert.Nil(t, ValidateStruct(payload{Email: "a@b.io", Password: "Password123?"}))
}

func TestParseIDList(t *testing.T) {
	ids, ok := ParseIDList("1, 2,3,")
	assert.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, ok = ParseIDList("1,x")
	assert.False(t, ok)

	_, ok = ParseIDList("")
	assert.False(t, ok)
}

func TestResponseJSON(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseJSON(w, http.StatusForbidden, false, map[string]string{"email": "bad"}, map[string]any{"Token": "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"Status":false,"Errors":{"email":"bad"},"Token":"x"}`, w.Body.String())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\nJWT_SECRET=from-file\nDB_NAME=shop\n"), 0o600))

	t.Setenv("DB_USER", "postgres")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "shop", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, 30*time.Second, cfg.PriceList.Timeout)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "8080", cfg.App.Port)
}
