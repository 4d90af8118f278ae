package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAppealMissIsNotAnError(t *testing.T) {
	appeals := []Appeal{{ID: 1}, {ID: 3}, {ID: 5}}

	_, found := FindAppeal(appeals, 7)
	assert.False(t, found)

	got, found := FindAppeal(appeals, 3)
	require.True(t, found)
	assert.Equal(t, int64(3), got.ID)
}

func TestAppealStatusDecided(t *testing.T) {
	assert.False(t, AppealPending.Decided())
	assert.True(t, AppealApproved.Decided())
	assert.True(t, AppealRejected.Decided())
}

func TestValidateAppealReason(t *testing.T) {
	assert.ErrorIs(t, ValidateAppealReason("too short"), ErrAppealTooShort)
	assert.ErrorIs(t, ValidateAppealReason("         padded      "), ErrAppealTooShort)
	assert.NoError(t, ValidateAppealReason("this is now long enough"))
	// Rune count, not byte count.
	assert.NoError(t, ValidateAppealReason("부당한 제재라고 생각합니다"))
}

func TestPenaltyAppealable(t *testing.T) {
	assert.True(t, Penalty{CanAppeal: true}.Appealable())
	assert.False(t, Penalty{CanAppeal: true, AppealSubmitted: true}.Appealable())
	assert.False(t, Penalty{CanAppeal: false}.Appealable())
}
