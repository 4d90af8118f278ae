package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonSetCapsAtThree(t *testing.T) {
	var set ReasonSet
	require.NoError(t, set.Add(ReasonSpam))
	require.NoError(t, set.Add(ReasonAbuse))
	require.NoError(t, set.Add(ReasonHate))

	err := set.Add(ReasonOther)
	assert.ErrorIs(t, err, ErrTooManyReasons)
	assert.Len(t, set, MaxReportReasons)
}

func TestReasonSetIgnoresDuplicates(t *testing.T) {
	var set ReasonSet
	require.NoError(t, set.Add(ReasonSpam))
	require.NoError(t, set.Add(ReasonSpam))
	assert.Len(t, set, 1)
}

func TestReasonSetRejectsUnknownReason(t *testing.T) {
	var set ReasonSet
	err := set.Add(ReportReason("GRIEFING"))
	assert.ErrorIs(t, err, ErrUnknownReason)
	assert.Empty(t, set)
}

func TestReportStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ReportStatus
		to      ReportStatus
		allowed bool
	}{
		{ReportPending, ReportInReview, true},
		{ReportPending, ReportRejected, true},
		{ReportPending, ReportResolved, false},
		{ReportInReview, ReportActionTaken, true},
		{ReportInReview, ReportResolved, true},
		{ReportInReview, ReportRejected, true},
		{ReportInReview, ReportPending, false},
		{ReportActionTaken, ReportResolved, true},
		{ReportActionTaken, ReportPending, false},
		{ReportRejected, ReportInReview, false},
		{ReportResolved, ReportInReview, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestReportStatusTerminal(t *testing.T) {
	assert.True(t, ReportRejected.Terminal())
	assert.True(t, ReportResolved.Terminal())
	assert.False(t, ReportPending.Terminal())
	assert.False(t, ReportInReview.Terminal())
	assert.False(t, ReportActionTaken.Terminal())
}

func TestReportStatusValid(t *testing.T) {
	assert.True(t, ReportInReview.Valid())
	// The ALL pseudo-filter is never a stored status.
	assert.False(t, ReportFilterAll.Valid())
	assert.False(t, ReportStatus("DONE").Valid())
}
