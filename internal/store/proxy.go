package store

import (
	"context"
	"io"
	"sync"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Proxy fronts a Source and the shared Collection. Fetch only performs I/O;
// the page becomes visible when the caller commits it.
type Proxy struct {
	source Source
	items  *Collection
	log    logrus.FieldLogger

	mu      sync.Mutex
	latency *movingaverage.MovingAverage
	fetches int
}

// NewProxy wires src to the collection items. A nil logger discards output.
func NewProxy(src Source, items *Collection, log logrus.FieldLogger) *Proxy {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Proxy{
		source:  src,
		items:   items,
		log:     log,
		latency: movingaverage.New(5),
	}
}

// Fetch asks the source for one page. Every failure comes back as a
// *TransientFetchError.
func (p *Proxy) Fetch(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	if err := req.Validate(); err != nil {
		return model.PageResponse{}, &TransientFetchError{Op: "fetch", Request: req, Err: err}
	}
	start := time.Now()
	resp, err := p.source.ListPage(ctx, req)
	took := time.Since(start)

	p.mu.Lock()
	p.latency.Add(float64(took/time.Microsecond) / 1000.0)
	p.fetches++
	p.mu.Unlock()

	fields := logrus.Fields{
		"filter":     req.Filter,
		"page_size":  req.PageSize,
		"page_token": req.PageToken,
		"took":       took,
	}
	if err != nil {
		p.log.WithFields(fields).WithError(err).Warn("fetch page failed")
		return model.PageResponse{}, &TransientFetchError{Op: "fetch", Request: req, Err: err}
	}
	p.log.WithFields(fields).WithField("items", len(resp.Items)).Debug("fetched page")
	return resp, nil
}

// Commit appends the page's items to the shared collection in one step.
func (p *Proxy) Commit(resp model.PageResponse) {
	p.items.Append(resp.Items...)
}

// Reset clears the shared collection.
func (p *Proxy) Reset() {
	p.items.Reset()
}

// CurrentItems returns every item appended since the last reset.
func (p *Proxy) CurrentItems() []model.Item {
	return p.items.Items()
}

// Collection returns the shared collection handle.
func (p *Proxy) Collection() *Collection { return p.items }

// AvgLatency is the moving average over the last few fetches.
func (p *Proxy) AvgLatency() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetches == 0 {
		return 0
	}
	return time.Duration(p.latency.Avg() * float64(time.Millisecond))
}
