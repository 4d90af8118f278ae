package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/config"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/session"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService exchanges a game-API bearer credential for a portal session.
// The upstream token lives only in the sealed redis record; the browser holds
// a gateway JWT naming the session.
type SessionService struct {
	api   *gameapi.Client
	store *session.Store
	cfg   *config.Config
}

func NewSessionService(api *gameapi.Client, store *session.Store, cfg *config.Config) *SessionService {
	return &SessionService{api: api, store: store, cfg: cfg}
}

// Established is the result of a successful session exchange.
type Established struct {
	SessionToken string
	MemberID     int64
	Nickname     string
	Roles        []string
}

// Establish validates the upstream credential, stores the session, and signs
// the gateway token. rememberMe selects the persistent TTL.
func (s *SessionService) Establish(ctx context.Context, upstreamToken string, rememberMe bool) (*Established, error) {
	identity, err := s.api.Identity(ctx, upstreamToken)
	if err != nil {
		return nil, err
	}

	sid, err := s.store.Create(ctx, session.Record{
		MemberID:   identity.MemberID,
		Nickname:   identity.Nickname,
		Roles:      identity.Roles,
		Token:      upstreamToken,
		RememberMe: rememberMe,
	})
	if err != nil {
		return nil, err
	}

	expiry := s.cfg.SessionTTL
	if rememberMe {
		expiry = s.cfg.PersistentSessionTTL
	}

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(identity.MemberID, 10),
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiry).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &Established{
		SessionToken: signed,
		MemberID:     identity.MemberID,
		Nickname:     identity.Nickname,
		Roles:        identity.Roles,
	}, nil
}

// Resolve loads the viewer behind a session id.
func (s *SessionService) Resolve(ctx context.Context, sid string) (*viewer.Viewer, error) {
	rec, err := s.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &viewer.Viewer{
		MemberID: rec.MemberID,
		Nickname: rec.Nickname,
		Roles:    rec.Roles,
		Token:    rec.Token,
	}, nil
}

// Destroy ends a session.
func (s *SessionService) Destroy(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid)
}
