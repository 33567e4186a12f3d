package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Item is one gallery entry, immutable for the session once loaded.
// URL and Kind may be empty; an item without media still occupies a slot
// and renders the neutral fallback.
type Item struct {
	ID    string `toml:"id" json:"id"`
	Title string `toml:"title" json:"title"`
	URL   string `toml:"url" json:"url"`
	Kind  string `toml:"kind" json:"kind"` // "image" or "video"

	// Poster is an optional still shown in the wall for video items.
	Poster string `toml:"poster" json:"poster"`
}

type feedFile struct {
	Items []Item `toml:"items" json:"items"`
}

var httpClient = &http.Client{Timeout: 20 * time.Second}

// Load returns the ordered item list from a local TOML feed file or a
// remote JSON feed URL. A configured path wins over a URL.
func Load(feedPath, feedURL string) ([]Item, error) {
	switch {
	case feedPath != "":
		return loadFile(feedPath)
	case feedURL != "":
		return loadURL(feedURL)
	default:
		return nil, fmt.Errorf("no feed configured")
	}
}

func loadFile(p string) ([]Item, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var f feedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("feed %s: %w", p, err)
	}
	return normalize(f.Items), nil
}

func loadURL(u string) ([]Item, error) {
	resp, err := httpClient.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s: %s", u, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(buf.Bytes())

	// Accept either a bare array or an {"items": [...]} wrapper.
	if len(data) > 0 && data[0] == '[' {
		var items []Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("feed %s: %w", u, err)
		}
		return normalize(items), nil
	}
	var f feedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("feed %s: %w", u, err)
	}
	return normalize(f.Items), nil
}

// normalize fills missing ids and media kinds so downstream code never
// branches on absent metadata.
func normalize(items []Item) []Item {
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Kind == "" {
			it.Kind = KindFromURL(it.URL)
		}
	}
	return items
}

// KindFromURL guesses the media kind from the URL extension. Defaults to
// image.
func KindFromURL(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".mp4", ".m4v", ".mov", ".webm":
		return "video"
	default:
		return "image"
	}
}
