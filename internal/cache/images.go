package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// ImageCache provides disk + memory caching for slot textures. Downloads
// are deduplicated and bounded so a large feed doesn't open one connection
// per slot at mount.
type ImageCache struct {
	cacheDir string
	memory   sync.Map // url -> *ebiten.Image
	loading  sync.Map // url -> *loadEntry
	sem      chan struct{}
}

type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 4),
	}, nil
}

// Get returns a cached texture if available, or nil.
func (ic *ImageCache) Get(url string) *ebiten.Image {
	if v, ok := ic.memory.Load(url); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync fetches a texture in the background. The callback runs from a
// goroutine when the texture is ready; on failure it is never called and
// the caller keeps showing its fallback. In-flight requests for the same
// URL share one download.
func (ic *ImageCache) LoadAsync(url string, callback func(*ebiten.Image)) {
	if v, ok := ic.memory.Load(url); ok {
		callback(v.(*ebiten.Image))
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(url, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(url)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.fetch(url)
		if err != nil {
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(url, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

// fetch reads the image from the disk cache or downloads it, teeing the
// body to disk while decoding.
func (ic *ImageCache) fetch(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if f, err := os.Open(diskPath); err == nil {
		defer f.Close()
		img, _, err := image.Decode(f)
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download.
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}
