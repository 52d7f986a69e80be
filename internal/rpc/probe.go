package rpc

import (
	"context"
	"sync"
	"time"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

// Probe pings every URL in parallel and returns one probed Endpoint
// per URL, in input order.
func Probe(ctx context.Context, urls []string) []Endpoint {
	endpoints := make([]Endpoint, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()

			probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			latency, block, err := chain.NewEVMClient(u).Ping(probeCtx)
			endpoints[idx] = Endpoint{
				URL:         u,
				Latency:     latency,
				BlockNumber: block,
				Healthy:     err == nil,
				Checked:     true,
			}
		}(i, url)
	}

	wg.Wait()
	return endpoints
}

// Best probes all URLs and picks one with the given algorithm. With a
// single URL no probe is made: there is nothing to choose between.
func Best(ctx context.Context, urls []string, algo Algorithm) (string, error) {
	if len(urls) == 0 {
		return "", ErrNoHealthyEndpoint
	}
	if len(urls) == 1 {
		return urls[0], nil
	}

	ep, err := NewPicker(algo).Pick(Probe(ctx, urls))
	if err != nil {
		return "", err
	}
	return ep.URL, nil
}
