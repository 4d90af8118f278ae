package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/models"
)

// Client is the typed caller for the remote game service. Every method takes
// the request context so a disconnected browser cancels its in-flight
// upstream work, and the viewer's bearer token so no ambient credential is
// ever consulted.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindUnreachable, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Message == "" {
			eb.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Kind: classify(resp.StatusCode), Message: eb.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func targetPath(target models.TargetType) string {
	if target == models.TargetComment {
		return "comments"
	}
	return "posts"
}

// Ping checks upstream reachability for health reporting.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "", http.MethodGet, "/api/v1/health", nil, nil)
}

// Identity resolves the member behind a bearer token.
func (c *Client) Identity(ctx context.Context, token string) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, token, http.MethodGet, "/api/v1/members/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateReport files a report against a post or a comment, routed by target.
func (c *Client) CreateReport(ctx context.Context, token string, target models.TargetType, targetID int64, sub ReportSubmission) (*SubmitOutcome, error) {
	path := fmt.Sprintf("/api/v1/%s/%d/reports", targetPath(target), targetID)
	var out SubmitOutcome
	if err := c.do(ctx, token, http.MethodPost, path, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReports returns the full report collection, optionally narrowed to one
// content type upstream.
func (c *Client) ListReports(ctx context.Context, token string, target models.TargetType) ([]models.Report, error) {
	path := "/api/v1/admin/reports"
	if target != "" {
		path += "?target_type=" + string(target)
	}
	var reports []models.Report
	if err := c.do(ctx, token, http.MethodGet, path, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches one report by its composite key.
func (c *Client) GetReport(ctx context.Context, token string, target models.TargetType, id int64) (*models.Report, error) {
	path := fmt.Sprintf("/api/v1/admin/reports/%s/%d", strings.ToLower(string(target)), id)
	var report models.Report
	if err := c.do(ctx, token, http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReport applies a triage decision to one report.
func (c *Client) UpdateReport(ctx context.Context, token string, target models.TargetType, id int64, upd ReportUpdate) error {
	path := fmt.Sprintf("/api/v1/admin/reports/%s/%d", strings.ToLower(string(target)), id)
	return c.do(ctx, token, http.MethodPatch, path, upd, nil)
}

// ListMyReports returns reports the member filed, newest first.
func (c *Client) ListMyReports(ctx context.Context, token string) ([]models.Report, error) {
	var reports []models.Report
	if err := c.do(ctx, token, http.MethodGet, "/api/v1/members/me/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// ListMyPenalties returns the member's penalty history with eligibility flags.
func (c *Client) ListMyPenalties(ctx context.Context, token string) ([]models.Penalty, error) {
	var penalties []models.Penalty
	if err := c.do(ctx, token, http.MethodGet, "/api/v1/members/me/penalties", nil, &penalties); err != nil {
		return nil, err
	}
	return penalties, nil
}

// GetPenaltyAppeal fetches the appeal attached to one of the member's
// penalties, when one exists.
func (c *Client) GetPenaltyAppeal(ctx context.Context, token string, penaltyID int64) (*models.Appeal, error) {
	path := fmt.Sprintf("/api/v1/members/me/penalties/%d/appeal", penaltyID)
	var appeal models.Appeal
	if err := c.do(ctx, token, http.MethodGet, path, nil, &appeal); err != nil {
		return nil, err
	}
	return &appeal, nil
}

// CreateAppeal files the member's single appeal against a penalty.
func (c *Client) CreateAppeal(ctx context.Context, token string, penaltyID int64, sub AppealSubmission) (*SubmitOutcome, error) {
	path := fmt.Sprintf("/api/v1/members/me/penalties/%d/appeal", penaltyID)
	var out SubmitOutcome
	if err := c.do(ctx, token, http.MethodPost, path, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAppeals returns the full appeal collection for the review console.
func (c *Client) ListAppeals(ctx context.Context, token string) ([]models.Appeal, error) {
	var appeals []models.Appeal
	if err := c.do(ctx, token, http.MethodGet, "/api/v1/admin/appeals", nil, &appeals); err != nil {
		return nil, err
	}
	return appeals, nil
}

// GetAppeal fetches one appeal directly by id.
func (c *Client) GetAppeal(ctx context.Context, token string, id int64) (*models.Appeal, error) {
	var appeal models.Appeal
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/v1/admin/appeals/%d", id), nil, &appeal); err != nil {
		return nil, err
	}
	return &appeal, nil
}

// ProcessAppeal records the admin's terminal decision on an appeal.
func (c *Client) ProcessAppeal(ctx context.Context, token string, id int64, dec AppealDecision) error {
	return c.do(ctx, token, http.MethodPost, fmt.Sprintf("/api/v1/admin/appeals/%d/process", id), dec, nil)
}

// GetThread fetches a post's comments in their nested wire shape.
func (c *Client) GetThread(ctx context.Context, token string, postID int64) ([]CommentNode, error) {
	var nodes []CommentNode
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/comments", postID), nil, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// LikedCommentIDs returns the ids of comments in a thread the viewer likes.
func (c *Client) LikedCommentIDs(ctx context.Context, token string, postID int64) ([]int64, error) {
	var ids []int64
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/comments/liked", postID), nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// TogglePostLike flips the viewer's like on a post and returns server truth.
func (c *Client) TogglePostLike(ctx context.Context, token string, postID int64) (*LikeState, error) {
	var state LikeState
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/like", postID), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ToggleCommentLike flips the viewer's like on a comment and returns server
// truth.
func (c *Client) ToggleCommentLike(ctx context.Context, token string, commentID int64) (*LikeState, error) {
	var state LikeState
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/api/v1/comments/%d/like", commentID), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
