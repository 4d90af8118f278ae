package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	key := bytes.Repeat([]byte{0x42}, 32)
	store, err := New(nil, key, 12*time.Hour, 720*time.Hour)
	require.NoError(t, err)
	return store
}

func TestNewRejectsWrongKeySize(t *testing.T) {
	_, err := New(nil, []byte("short"), time.Hour, time.Hour)
	assert.Error(t, err)
}

func TestSealRoundTrip(t *testing.T) {
	store := testStore(t)
	rec := Record{
		MemberID:   42,
		Nickname:   "tester",
		Roles:      []string{"MEMBER"},
		Token:      "upstream-bearer-token",
		RememberMe: true,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	blob, err := store.seal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), rec.Token)

	got, err := store.open(blob)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestOpenRejectsTamperedBlob(t *testing.T) {
	store := testStore(t)
	blob, err := store.seal(Record{MemberID: 1, Token: "secret"})
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xff
	_, err = store.open(blob)
	assert.Error(t, err)
}

func TestOpenRejectsTruncatedBlob(t *testing.T) {
	store := testStore(t)
	_, err := store.open([]byte("short"))
	assert.Error(t, err)
}

func TestOpenRejectsForeignKey(t *testing.T) {
	store := testStore(t)
	blob, err := store.seal(Record{MemberID: 1, Token: "secret"})
	require.NoError(t, err)

	other, err := New(nil, bytes.Repeat([]byte{0x24}, 32), time.Hour, time.Hour)
	require.NoError(t, err)
	_, err = other.open(blob)
	assert.Error(t, err)
}
