package player

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/driftwall/internal/config"
)

// Player wraps libmpv for video item playback. Videos open in their own
// window, looping and muted by default, and close back to the wall.
type Player struct {
	m       *mpv.Mpv
	mu      sync.Mutex
	playing bool
	itemID  string

	OnPlaybackEnd func()
}

// New creates and initializes an mpv instance configured for the wall's
// autoplay behavior.
func New(cfg *config.Config) (*Player, error) {
	m := mpv.New()

	must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("force-window", "yes"))
	must(m.SetOptionString("keep-open", "no"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("osc", "no"))

	if cfg.Playback.Loop {
		must(m.SetOptionString("loop-file", "inf"))
	}
	if cfg.Playback.Mute {
		must(m.SetOptionString("mute", "yes"))
	}
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Playback.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}
	go p.eventLoop()
	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// Play starts playback of a video item's URL.
func (p *Player) Play(url, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemID = itemID
	p.playing = true
	return p.m.Command([]string{"loadfile", url})
}

// TogglePause toggles pause state.
func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// ToggleMute toggles audio mute.
func (p *Player) ToggleMute() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "mute"})
}

// Stop stops playback and closes the video window.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Playing reports whether a video is currently open.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// ItemID returns the currently playing item id.
func (p *Player) ItemID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemID
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			// Stop() clears playing before sending the stop command, so
			// its own end event arrives with wasPlaying=false and is
			// ignored here.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
