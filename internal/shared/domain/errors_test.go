package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/meetdesk/internal/shared/domain"
	"github.com/stretchr/testify/assert"
)

func TestError_MatchesReasonAndKind(t *testing.T) {
	errDuplicate := domain.NewError(domain.ErrConflict, "duplicate meeting")
	wrapped := fmt.Errorf("add meeting: %w", errDuplicate)

	assert.ErrorIs(t, wrapped, errDuplicate)
	assert.ErrorIs(t, wrapped, domain.ErrConflict)
	assert.NotErrorIs(t, wrapped, domain.ErrNotFound)
	assert.Equal(t, "duplicate meeting", errDuplicate.Error())
	assert.Equal(t, domain.ErrConflict, errDuplicate.Kind())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", domain.NewError(domain.ErrValidation, "bad"), domain.ErrValidation},
		{"not found", domain.NewError(domain.ErrNotFound, "gone"), domain.ErrNotFound},
		{"conflict", fmt.Errorf("wrap: %w", domain.NewError(domain.ErrConflict, "busy")), domain.ErrConflict},
		{"unauthorized", domain.NewError(domain.ErrUnauthorized, "nope"), domain.ErrUnauthorized},
		{"plain", errors.New("disk full"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}
