// Package localization resolves user-facing messages from per-language JSON
// catalogs, so every failure category reads in the viewer's language rather
// than as a raw transport string.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Localizer holds one key/value catalog per language code.
type Localizer struct {
	catalogs map[string]map[string]string
	mu       sync.RWMutex
}

// New loads every <lang>.json file in dir.
func New(dir string) (*Localizer, error) {
	l := &Localizer{catalogs: make(map[string]map[string]string)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}

		var catalog map[string]string
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", entry.Name(), err)
		}
		l.catalogs[strings.TrimSuffix(entry.Name(), ".json")] = catalog
	}

	return l, nil
}

// Message returns the catalog entry for key in lang, falling back to English
// and finally to the key itself.
func (l *Localizer) Message(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if catalog, ok := l.catalogs[lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if lang != "en" {
		if catalog, ok := l.catalogs["en"]; ok {
			if msg, ok := catalog[key]; ok {
				return msg
			}
		}
	}
	return key
}

// PickLanguage reduces an Accept-Language header to a supported catalog code.
func PickLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return "en"
	}
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	if len(first) > 2 {
		first = first[:2]
	}
	return strings.ToLower(strings.TrimSpace(first))
}
