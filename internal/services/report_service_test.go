package services

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingUpstream fails the test if validation lets anything through.
func countingUpstream(t *testing.T, status int, body string) (*gameapi.Client, *int32) {
	t.Helper()
	var calls int32
	return newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, status, body)
	})), &calls
}

func TestSubmitRejectsFourReasonsBeforeAnyCall(t *testing.T) {
	api, calls := countingUpstream(t, http.StatusCreated, `{"success":true}`)
	svc := NewReportService(api)

	_, err := svc.Submit(context.Background(), testViewer(), models.TargetPost, 10,
		[]models.ReportReason{models.ReasonSpam, models.ReasonAbuse, models.ReasonHate, models.ReasonOther},
		"")
	assert.ErrorIs(t, err, models.ErrTooManyReasons)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestSubmitRejectsEmptyReasons(t *testing.T) {
	api, calls := countingUpstream(t, http.StatusCreated, `{"success":true}`)
	svc := NewReportService(api)

	_, err := svc.Submit(context.Background(), testViewer(), models.TargetComment, 10, nil, "")
	assert.ErrorIs(t, err, models.ErrNoReasons)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestSubmitRejectsOverlongDescription(t *testing.T) {
	api, calls := countingUpstream(t, http.StatusCreated, `{"success":true}`)
	svc := NewReportService(api)

	_, err := svc.Submit(context.Background(), testViewer(), models.TargetPost, 10,
		[]models.ReportReason{models.ReasonSpam}, strings.Repeat("a", 101))
	assert.ErrorIs(t, err, models.ErrDescriptionTooLong)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestSubmitAcceptsHundredRuneDescription(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/posts/10/reports", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"success":true,"message":"received"}`)
	})
	svc := NewReportService(newTestClient(t, mux))

	outcome, err := svc.Submit(context.Background(), testViewer(), models.TargetPost, 10,
		[]models.ReportReason{models.ReasonSpam}, strings.Repeat("가", 100))
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, "received", outcome.Message)
}

func TestSubmitRoutesByTargetType(t *testing.T) {
	var postHits, commentHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/posts/7/reports", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&postHits, 1)
		writeJSON(w, http.StatusCreated, `{"success":true}`)
	})
	mux.HandleFunc("POST /api/v1/comments/7/reports", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&commentHits, 1)
		writeJSON(w, http.StatusCreated, `{"success":true}`)
	})
	svc := NewReportService(newTestClient(t, mux))

	_, err := svc.Submit(context.Background(), testViewer(), models.TargetPost, 7,
		[]models.ReportReason{models.ReasonSpam}, "")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), testViewer(), models.TargetComment, 7,
		[]models.ReportReason{models.ReasonAbuse}, "")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&postHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&commentHits))
}

func TestSubmitDistinguishesConflictFromServerError(t *testing.T) {
	conflictAPI, _ := countingUpstream(t, http.StatusConflict, `{"message":"duplicate report"}`)
	_, err := NewReportService(conflictAPI).Submit(context.Background(), testViewer(),
		models.TargetPost, 1, []models.ReportReason{models.ReasonSpam}, "")
	require.Error(t, err)
	assert.Equal(t, gameapi.KindConflict, gameapi.KindOf(err))

	serverAPI, _ := countingUpstream(t, http.StatusInternalServerError, `{"message":"oops"}`)
	_, err = NewReportService(serverAPI).Submit(context.Background(), testViewer(),
		models.TargetPost, 1, []models.ReportReason{models.ReasonSpam}, "")
	require.Error(t, err)
	assert.Equal(t, gameapi.KindServer, gameapi.KindOf(err))
}

func TestSubmitUnreachableUpstreamIsItsOwnCategory(t *testing.T) {
	api := gameapiUnreachableClient(t)
	_, err := NewReportService(api).Submit(context.Background(), testViewer(),
		models.TargetPost, 1, []models.ReportReason{models.ReasonSpam}, "")
	require.Error(t, err)
	assert.Equal(t, gameapi.KindUnreachable, gameapi.KindOf(err))
}
