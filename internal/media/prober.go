package media

import "context"

// Result carries one finished probe back to the frame loop.
type Result struct {
	SlotID string
	Dims   Dims
	Err    error
}

// Prober runs aspect probes concurrently and delivers results on a buffered
// channel the frame loop drains once per tick. Close cancels outstanding
// work; late results are dropped, never applied to released state.
type Prober struct {
	resolver *Resolver
	ctx      context.Context
	cancel   context.CancelFunc
	results  chan Result
	sem      chan struct{}
}

func NewProber(r *Resolver) *Prober {
	ctx, cancel := context.WithCancel(context.Background())
	return &Prober{
		resolver: r,
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan Result, 64),
		sem:      make(chan struct{}, 4),
	}
}

// Probe starts a background probe for the given slot. Safe to call for
// every slot at once; concurrency is bounded by the semaphore.
func (p *Prober) Probe(slotID, url, kind string) {
	go func() {
		select {
		case p.sem <- struct{}{}:
		case <-p.ctx.Done():
			return
		}
		defer func() { <-p.sem }()

		dims, err := p.resolver.Resolve(p.ctx, url, kind)
		if p.ctx.Err() != nil {
			return
		}
		select {
		case p.results <- Result{SlotID: slotID, Dims: dims, Err: err}:
		case <-p.ctx.Done():
		}
	}()
}

// Drain applies finished probes without blocking. Call once per frame.
func (p *Prober) Drain(apply func(Result)) {
	for {
		select {
		case res := <-p.results:
			apply(res)
		default:
			return
		}
	}
}

// Close cancels all outstanding probes.
func (p *Prober) Close() {
	p.cancel()
}
