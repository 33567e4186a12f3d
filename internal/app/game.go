package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/driftwall/internal/cache"
	"github.com/depeter/driftwall/internal/config"
	"github.com/depeter/driftwall/internal/content"
	"github.com/depeter/driftwall/internal/gallery"
	"github.com/depeter/driftwall/internal/media"
	"github.com/depeter/driftwall/internal/player"
	"github.com/depeter/driftwall/internal/ui"
)

// texLoad carries a finished texture download back to the frame loop.
type texLoad struct {
	slotID string
	img    *ebiten.Image
}

// slotVisual is per-slot render state owned by the frame loop: resolved
// dimensions, texture, and the last-drawn screen rect for hover picking.
// Mutated in place; no per-frame reallocation.
type slotVisual struct {
	item      content.Item
	dims      media.Dims
	resolved  bool
	requested bool
	texture   *ebiten.Image

	sx, sy, sw, sh float64
	onScreen       bool
}

// Game implements ebiten.Game and owns all wall state. Exactly one writer:
// Update. Input handlers and async loaders only feed queues it drains.
type Game struct {
	cfg   *config.Config
	cache *cache.ImageCache

	engine   *gallery.Engine
	scroller *gallery.Scroller
	camera   *gallery.Camera
	prober   *media.Prober

	visuals map[string]*slotVisual
	texCh   chan texLoad

	hover  ui.HoverLabel
	grain  *ui.Grain
	player *player.Player

	touchIDs []ebiten.TouchID
	recycles int
}

// NewGame wires the wall from the loaded feed. Aspect probes for every
// item start immediately; everything else resolves on the frame loop.
func NewGame(cfg *config.Config, items []content.Item, imgCache *cache.ImageCache) (*Game, error) {
	gc := cfg.Gallery
	params := gallery.Params{
		VerticalGap:   gc.VerticalGap,
		SlotHeight:    gc.BaseHeight,
		RecycleBuffer: gc.RecycleBuffer,
		Columns:       gc.Columns,
		ColumnSpread:  gc.ColumnSpread,
		DepthJitter:   gc.DepthJitter,
		Seed:          time.Now().UnixNano(),
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	mode := gallery.ModeWheel
	if gc.AutoScroll {
		mode = gallery.ModeAuto
	}

	grain, err := ui.NewGrain(gc.Grain)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		cache:    imgCache,
		engine:   gallery.NewEngine(ids, params, time.Now()),
		scroller: gallery.NewScroller(mode, gc.WheelSensitivity, gc.AutoScrollRate),
		camera:   gallery.NewCamera(gc.FOV, gc.CameraDistance),
		prober:   media.NewProber(media.NewResolver(gc.BaseHeight)),
		visuals:  make(map[string]*slotVisual, len(items)),
		texCh:    make(chan texLoad, len(items)+8),
		grain:    grain,
	}

	square := media.RenderSize(gc.BaseHeight, media.Square)
	for _, it := range items {
		g.visuals[it.ID] = &slotVisual{item: it, dims: square}
		g.prober.Probe(it.ID, it.URL, it.Kind)
	}
	return g, nil
}

// Close releases async workers and the video player.
func (g *Game) Close() {
	g.prober.Close()
	if g.player != nil {
		g.player.Destroy()
	}
}

func (g *Game) Update() error {
	if fullscreenToggled() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	ui.ToggleDebugOverlay()
	if backPressed() && g.player != nil && g.player.Playing() {
		g.player.Stop()
	}

	// Touch-first devices get the constant drift; there is no wheel there.
	var touching bool
	g.touchIDs, touching = appendTouches(g.touchIDs)
	if touching {
		g.scroller.SetMode(gallery.ModeAuto)
	}
	if g.scroller.Mode() == gallery.ModeWheel {
		if d := wheelDelta(); d != 0 {
			g.scroller.Wheel(d)
		}
	}

	offset := g.scroller.Step(1.0 / 60)
	recycled, _ := g.engine.Advance(offset, g.camera.HalfHeight())
	g.recycles += recycled

	g.prober.Drain(func(res media.Result) {
		if res.Err != nil {
			log.Printf("aspect probe: %v", res.Err)
		}
		if v, ok := g.visuals[res.SlotID]; ok {
			v.dims = res.Dims
			v.resolved = true
		}
	})
	g.requestTextures()
	g.drainTextures()

	g.updateHover()
	return nil
}

// requestTextures queues downloads for slots whose aspect is known. Image
// slots load the media itself; video slots load their poster still if the
// feed provides one, otherwise they keep the neutral material and their
// media plays on activation.
func (g *Game) requestTextures() {
	for i := range g.engine.Slots() {
		s := &g.engine.Slots()[i]
		v := g.visuals[s.ID]
		if v == nil || v.requested || !v.resolved {
			continue
		}
		url := v.item.URL
		if v.item.Kind != media.KindImage {
			url = v.item.Poster
		}
		if url == "" {
			continue
		}
		v.requested = true
		id := s.ID
		g.cache.LoadAsync(url, func(img *ebiten.Image) {
			g.texCh <- texLoad{slotID: id, img: img}
		})
	}
}

// drainTextures applies finished downloads; textures land on the frame
// tick, never mid-draw.
func (g *Game) drainTextures() {
	for {
		select {
		case t := <-g.texCh:
			if v, ok := g.visuals[t.slotID]; ok {
				v.texture = t.img
			}
		default:
			return
		}
	}
}

// updateHover picks the topmost slot under the pointer using the rects
// committed by the previous draw and feeds the floating label.
func (g *Game) updateHover() {
	cx, cy := ebiten.CursorPosition()
	var hit *slotVisual
	for _, s := range g.engine.Slots() {
		v := g.visuals[s.ID]
		if v == nil || !v.onScreen {
			continue
		}
		if float64(cx) >= v.sx && float64(cx) <= v.sx+v.sw &&
			float64(cy) >= v.sy && float64(cy) <= v.sy+v.sh {
			hit = v
		}
	}
	if hit == nil {
		g.hover.Clear()
	} else {
		g.hover.Set(hit.item.Title, cx, cy)
	}

	if x, y, ok := clicked(); ok && hit != nil &&
		float64(x) >= hit.sx && float64(y) >= hit.sy {
		if hit.item.Kind == media.KindVideo && hit.item.URL != "" {
			g.playVideo(hit.item)
		}
	}
}

func (g *Game) playVideo(it content.Item) {
	if g.player == nil {
		p, err := player.New(g.cfg)
		if err != nil {
			log.Printf("failed to init player: %v", err)
			return
		}
		g.player = p
	}
	if err := g.player.Play(it.URL, it.ID); err != nil {
		log.Printf("failed to play %s: %v", it.Title, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	// Viewport and half height recomputed every frame so resizes and
	// device-scale changes never leave stale frustum math behind.
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.camera.SetViewport(w, h)
	halfH := g.camera.HalfHeight()
	now := time.Now()

	slots := g.engine.Slots()
	for i := range slots {
		s := &slots[i]
		v := g.visuals[s.ID]
		if v == nil {
			continue
		}
		g.drawSlot(screen, s, v, halfH, now)
	}

	g.hover.Draw(screen)
	g.grain.Draw(screen)
	ui.DrawDebugOverlay(screen, g.debugStats())
}

func (g *Game) debugStats() ui.DebugStats {
	st := ui.DebugStats{
		Offset:   g.scroller.Offset(),
		Target:   g.scroller.Target(),
		Slots:    g.engine.Len(),
		Recycles: g.recycles,
	}
	for _, v := range g.visuals {
		if v.onScreen {
			st.Visible++
		}
		if v.resolved {
			st.Resolved++
		}
		if v.texture != nil {
			st.Textures++
		}
	}
	return st
}

func (g *Game) drawSlot(dst *ebiten.Image, s *gallery.Slot, v *slotVisual, halfH float64, now time.Time) {
	entrance := s.Entrance(now)
	alpha := entrance * gallery.EdgeFade(s.RenderY, halfH)
	if alpha <= 0 {
		v.onScreen = false
		return
	}

	sx, sy, pxPerUnit := g.camera.Project(s.X, s.RenderY, s.Z)
	scale := 0.8 + 0.2*entrance
	wpx := v.dims.Width * pxPerUnit * scale
	hpx := v.dims.Height * pxPerUnit * scale
	if wpx < 1 || hpx < 1 {
		v.onScreen = false
		return
	}

	x0 := sx - wpx/2
	y0 := sy - hpx/2
	v.sx, v.sy, v.sw, v.sh = x0, y0, wpx, hpx
	v.onScreen = true

	if v.texture != nil {
		b := v.texture.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Scale(wpx/float64(b.Dx()), hpx/float64(b.Dy()))
		op.GeoM.Translate(x0, y0)
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(v.texture, op)
	} else {
		vector.DrawFilledRect(dst,
			float32(x0), float32(y0), float32(wpx), float32(hpx),
			fade(ui.ColorPlaceholder, alpha), false)
	}

	if v.item.Kind == media.KindVideo {
		r := minF(wpx, hpx) * 0.12
		vector.DrawFilledCircle(dst,
			float32(sx), float32(sy), float32(r),
			fade(ui.ColorBadge, alpha), true)
		ui.DrawTextCentered(dst, ">", sx+r*0.1, sy, r, fade(ui.ColorBackground, alpha))
	}
}

// fade premultiplies a theme color by alpha for vector drawing.
func fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Layout renders at native resolution with the device scale capped for
// performance on dense displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if max := g.cfg.Gallery.MaxDeviceScale; max > 0 && s > max {
		s = max
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}
