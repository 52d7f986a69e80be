// Package rpc selects the healthiest JSON-RPC endpoint for a network
// before a query is issued. Selection happens once per action; a query
// that fails afterwards is surfaced to the caller, never retried here.
package rpc

import (
	"errors"
	"sync"
	"time"
)

// ErrNoHealthyEndpoint is returned when no usable endpoint is available.
var ErrNoHealthyEndpoint = errors.New("no healthy RPC endpoint available")

// Algorithm defines how an endpoint is selected.
type Algorithm string

const (
	AlgorithmFastest    Algorithm = "fastest"
	AlgorithmRoundRobin Algorithm = "round-robin"
	AlgorithmFailover   Algorithm = "failover"

	// Discard nodes more than this many blocks behind the best.
	staleBlockThreshold = 3
	// Cache the fastest winner for this duration before re-probing.
	cacheTTL = 5 * time.Minute
)

// Endpoint is a single RPC endpoint with its measured attributes.
type Endpoint struct {
	URL         string
	Latency     time.Duration
	BlockNumber uint64
	Healthy     bool // meaningful only when Checked is true
	Checked     bool // true once the endpoint has been probed
}

// Picker selects an endpoint according to the configured algorithm.
type Picker struct {
	algo        Algorithm
	mu          sync.Mutex
	rrIndex     int
	cachedURL   string
	cacheExpiry time.Time
}

// NewPicker creates a Picker with the given algorithm. Unknown
// algorithms fall back to fastest.
func NewPicker(algo Algorithm) *Picker {
	return &Picker{algo: algo}
}

// Pick selects an endpoint from the provided list.
func (p *Picker) Pick(endpoints []Endpoint) (*Endpoint, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	switch p.algo {
	case AlgorithmRoundRobin:
		return p.pickRoundRobin(endpoints)
	case AlgorithmFailover:
		return p.pickFailover(endpoints)
	default:
		return p.pickFastest(endpoints)
	}
}

func (p *Picker) pickFastest(endpoints []Endpoint) (*Endpoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Return the cached winner while still fresh.
	if p.cachedURL != "" && time.Now().Before(p.cacheExpiry) {
		for i := range endpoints {
			if endpoints[i].URL == p.cachedURL {
				return &endpoints[i], nil
			}
		}
	}

	var bestBlock uint64
	for _, e := range endpoints {
		if e.BlockNumber > bestBlock {
			bestBlock = e.BlockNumber
		}
	}

	candidates := usable(endpoints)
	if len(candidates) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	var winner *Endpoint
	var bestScore float64
	for _, e := range candidates {
		if bestBlock > 0 && bestBlock-e.BlockNumber > staleBlockThreshold {
			continue
		}
		s := score(e, bestBlock)
		if winner == nil || s > bestScore {
			winner = e
			bestScore = s
		}
	}
	if winner == nil {
		return nil, ErrNoHealthyEndpoint
	}

	p.cachedURL = winner.URL
	p.cacheExpiry = time.Now().Add(cacheTTL)
	return winner, nil
}

func (p *Picker) pickRoundRobin(endpoints []Endpoint) (*Endpoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	healthy := usable(endpoints)
	if len(healthy) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	idx := p.rrIndex % len(healthy)
	p.rrIndex = (idx + 1) % len(healthy)
	return healthy[idx], nil
}

func (p *Picker) pickFailover(endpoints []Endpoint) (*Endpoint, error) {
	for i := range endpoints {
		e := &endpoints[i]
		if e.Checked && !e.Healthy {
			continue
		}
		return e, nil
	}
	return nil, ErrNoHealthyEndpoint
}

// score favours low latency and block recency.
func score(e *Endpoint, bestBlock uint64) float64 {
	var s float64
	if e.Latency > 0 {
		s += 1000.0 / float64(e.Latency.Milliseconds())
	}
	if bestBlock > 0 {
		behind := bestBlock - e.BlockNumber
		s += float64(10 - behind) // loses a point per block behind
	}
	return s
}

// usable returns endpoints eligible for selection. Unprobed endpoints
// count as candidates; probed ones must be healthy.
func usable(endpoints []Endpoint) []*Endpoint {
	anyChecked := false
	for _, e := range endpoints {
		if e.Checked {
			anyChecked = true
			break
		}
	}

	var out []*Endpoint
	for i := range endpoints {
		e := &endpoints[i]
		if anyChecked && e.Checked && !e.Healthy {
			continue
		}
		out = append(out, e)
	}
	return out
}
