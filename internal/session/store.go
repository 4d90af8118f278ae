// Package session keeps portal sessions in redis. The upstream bearer token
// is sealed with ChaCha20-Poly1305 before it is written, so a session dump
// never exposes live game-API credentials.
package session

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/chacha20poly1305"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "portal:session:"

// Record is one live portal session. RememberMe selects the persistent TTL
// over the session-scoped one.
type Record struct {
	MemberID   int64     `json:"member_id"`
	Nickname   string    `json:"nickname"`
	Roles      []string  `json:"roles"`
	Token      string    `json:"token"`
	RememberMe bool      `json:"remember_me"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store reads and writes sealed session records.
type Store struct {
	rdb           *redis.Client
	aead          cipher.AEAD
	sessionTTL    time.Duration
	persistentTTL time.Duration
}

// New builds a store. key must be exactly 32 bytes.
func New(rdb *redis.Client, key []byte, sessionTTL, persistentTTL time.Duration) (*Store, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("session cipher: %w", err)
	}
	return &Store{
		rdb:           rdb,
		aead:          aead,
		sessionTTL:    sessionTTL,
		persistentTTL: persistentTTL,
	}, nil
}

func (s *Store) seal(rec Record) ([]byte, error) {
	plain, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

func (s *Store) open(blob []byte) (Record, error) {
	var rec Record
	if len(blob) < s.aead.NonceSize() {
		return rec, errors.New("sealed session too short")
	}
	nonce, sealed := blob[:s.aead.NonceSize()], blob[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return rec, fmt.Errorf("unseal session: %w", err)
	}
	if err := json.Unmarshal(plain, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Create seals and stores a new session, returning its id.
func (s *Store) Create(ctx context.Context, rec Record) (string, error) {
	rec.CreatedAt = time.Now().UTC()
	blob, err := s.seal(rec)
	if err != nil {
		return "", fmt.Errorf("seal session: %w", err)
	}

	sid := uuid.NewString()
	ttl := s.sessionTTL
	if rec.RememberMe {
		ttl = s.persistentTTL
	}
	if err := s.rdb.Set(ctx, keyPrefix+sid, blob, ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Get loads one session by id.
func (s *Store) Get(ctx context.Context, sid string) (*Record, error) {
	blob, err := s.rdb.Get(ctx, keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	rec, err := s.open(blob)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}

// Ping verifies the redis connection for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
