package media

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"time"

	_ "golang.org/x/image/webp"
)

// Media kinds, derived upstream from the feed.
const (
	KindImage = "image"
	KindVideo = "video"
)

// CanonicalRatio is one of the fixed width:height buckets layout uses so
// arbitrary media snaps to a consistent set of plane shapes.
type CanonicalRatio struct {
	Name  string
	Value float64
}

var Canonical = []CanonicalRatio{
	{"1:1", 1},
	{"16:9", 16.0 / 9},
	{"9:16", 9.0 / 16},
	{"4:5", 4.0 / 5},
	{"5:4", 5.0 / 4},
}

// Square is the fallback bucket when a probe fails or there is no URL.
var Square = Canonical[0]

// Dims are resolved render dimensions for one item, in world units.
type Dims struct {
	Ratio  CanonicalRatio
	Width  float64
	Height float64
}

// Nearest buckets a width/height ratio to the closest canonical ratio by
// absolute difference.
func Nearest(ratio float64) CanonicalRatio {
	best := Canonical[0]
	bestD := math.Abs(ratio - best.Value)
	for _, c := range Canonical[1:] {
		if d := math.Abs(ratio - c.Value); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

// RenderSize holds the base height constant and scales width by the ratio.
func RenderSize(baseHeight float64, r CanonicalRatio) Dims {
	return Dims{Ratio: r, Width: baseHeight * r.Value, Height: baseHeight}
}

// Resolver probes media URLs for natural dimensions. It reads metadata
// only: image headers via DecodeConfig, video via the MP4 moov box. It
// never performs a full decode.
type Resolver struct {
	Client     *http.Client
	BaseHeight float64
}

func NewResolver(baseHeight float64) *Resolver {
	return &Resolver{
		Client:     &http.Client{Timeout: 15 * time.Second},
		BaseHeight: baseHeight,
	}
}

// Resolve returns bucketed render dimensions for url. Any failure falls
// back to the square bucket so a single bad item never blocks layout; the
// returned error is informational.
func (r *Resolver) Resolve(ctx context.Context, url, kind string) (Dims, error) {
	if url == "" {
		return RenderSize(r.BaseHeight, Square), nil
	}
	w, h, err := r.probe(ctx, url, kind)
	if err == nil && (w <= 0 || h <= 0) {
		err = fmt.Errorf("probe %s: degenerate dimensions %dx%d", url, w, h)
	}
	if err != nil {
		return RenderSize(r.BaseHeight, Square), err
	}
	return RenderSize(r.BaseHeight, Nearest(float64(w)/float64(h))), nil
}

func (r *Resolver) probe(ctx context.Context, url, kind string) (w, h int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, 0, fmt.Errorf("probe %s: %s", url, resp.Status)
	}

	if kind == KindVideo {
		return MP4Dimensions(resp.Body)
	}
	cfg, _, err := image.DecodeConfig(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("probe %s: %w", url, err)
	}
	return cfg.Width, cfg.Height, nil
}
