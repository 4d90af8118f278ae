package localization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, lang, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".json"), []byte(body), 0o644))
}

func newTestLocalizer(t *testing.T) *Localizer {
	t.Helper()
	dir := t.TempDir()
	writeCatalog(t, dir, "en", `{"error.not_found":"Not found.","error.conflict":"Already handled."}`)
	writeCatalog(t, dir, "ko", `{"error.not_found":"찾을 수 없습니다."}`)

	loc, err := New(dir)
	require.NoError(t, err)
	return loc
}

func TestMessageResolvesRequestedLanguage(t *testing.T) {
	loc := newTestLocalizer(t)
	assert.Equal(t, "찾을 수 없습니다.", loc.Message("ko", "error.not_found"))
}

func TestMessageFallsBackToEnglish(t *testing.T) {
	loc := newTestLocalizer(t)
	assert.Equal(t, "Already handled.", loc.Message("ko", "error.conflict"))
	assert.Equal(t, "Not found.", loc.Message("fr", "error.not_found"))
}

func TestMessageFallsBackToKey(t *testing.T) {
	loc := newTestLocalizer(t)
	assert.Equal(t, "error.unknown", loc.Message("en", "error.unknown"))
}

func TestNewRejectsBrokenCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en", `{not json`)

	_, err := New(dir)
	assert.Error(t, err)
}

func TestPickLanguage(t *testing.T) {
	cases := map[string]string{
		"":                          "en",
		"ko":                        "ko",
		"ko-KR,ko;q=0.9,en;q=0.8":   "ko",
		"en-US,en;q=0.5":            "en",
		"ja-JP":                     "ja",
		"  fr-CA ,en":               "fr",
	}
	for header, want := range cases {
		assert.Equal(t, want, PickLanguage(header), "header %q", header)
	}
}

func TestShippedCatalogsParse(t *testing.T) {
	loc, err := New(filepath.Join("..", "..", "locales"))
	require.NoError(t, err)
	assert.NotEqual(t, "error.auth_required", loc.Message("en", "error.auth_required"))
	assert.NotEqual(t, "error.auth_required", loc.Message("ko", "error.auth_required"))
}
