package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, auth.CheckPassword("hunter2!", hash))
	assert.False(t, auth.CheckPassword("hunter3!", hash))
	assert.False(t, auth.CheckPassword("hunter2!", "not-a-hash"))
}

func TestJWTRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := auth.MakeJWT(userID, "secret", time.Hour)
	require.NoError(t, err)

	got, err := auth.ValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateJWT_Failures(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name   string
		token  func(t *testing.T) string
		secret string
	}

	tests := []testCase{
		{
			name: "WrongSecret",
			token: func(t *testing.T) string {
				tok, err := auth.MakeJWT(userID, "secret", time.Hour)
				require.NoError(t, err)
				return tok
			},
			secret: "other-secret",
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				tok, err := auth.MakeJWT(userID, "secret", -time.Minute)
				require.NoError(t, err)
				return tok
			},
			secret: "secret",
		},
		{
			name:   "Garbage",
			token:  func(*testing.T) string { return "not.a.token" },
			secret: "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.ValidateJWT(tt.token(t), tt.secret)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	type testCase struct {
		name    string
		header  string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", header: "Bearer abc123", want: "abc123"},
		{name: "CaseInsensitiveScheme", header: "bearer abc123", want: "abc123"},
		{name: "Missing", header: "", wantErr: true},
		{name: "WrongScheme", header: "Basic abc123", wantErr: true},
		{name: "EmptyToken", header: "Bearer ", wantErr: true},
		{name: "NoToken", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			if tt.header != "" {
				headers.Set("Authorization", tt.header)
			}

			got, err := auth.BearerToken(headers)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
