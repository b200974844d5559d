package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "+14165550198", NormalizePhone(" +1 (416) 555-01.98"))
	assert.True(t, LooksLikeEmail("a@b"))
	assert.False(t, LooksLikeEmail("@b"))
	assert.False(t, LooksLikeEmail("a@"))
	assert.False(t, LooksLikeEmail("+15550100"))
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		err     error
		code    string
		errCode string
		ok      bool
	}{
		{domain.ErrUserNotFound, StatusNotFound, domain.CodeUserNotFound, true},
		{fmt.Errorf("wrapped: %w", domain.ErrFriendRequestPending), StatusConflict, domain.CodeFriendRequestPending, true},
		{domain.Invalid(errors.New("bad email")), StatusBadRequest, domain.CodeInvalidInput, true},
		{errors.New("connection reset"), "", "", false},
	}
	for _, tt := range tests {
		code, ok := StatusOf(tt.err)
		assert.Equal(t, tt.ok, ok, tt.err)
		assert.Equal(t, tt.code, code, tt.err)
		if ok {
			resp := ManageFailed(tt.err)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.errCode, resp.ErrMessage)
			assert.Empty(t, resp.ID)
		}
	}

	ok := ManageOK("id-1", "done")
	assert.Equal(t, StatusOK, ok.Code)
	assert.Equal(t, "id-1", ok.ID)
	assert.Empty(t, ok.ErrMessage)
}
