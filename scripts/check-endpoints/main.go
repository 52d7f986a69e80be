// check-endpoints: probes every built-in RPC endpoint of both Base
// networks in parallel and prints a health summary table.
//
// Run from the module root:
//
//	go run ./scripts/check-endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/rpc"
)

const probeTimeout = 12 * time.Second

type result struct {
	network  string
	endpoint rpc.Endpoint
}

func main() {
	reg := chain.NewRegistry()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for _, n := range reg.Networks() {
		wg.Add(1)
		go func(n chain.Network) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			defer cancel()

			for _, ep := range rpc.Probe(ctx, n.RPCs) {
				mu.Lock()
				results = append(results, result{network: n.Name, endpoint: ep})
				mu.Unlock()
			}
		}(n)
	}

	wg.Wait()
	printTable(results)
}

func printTable(results []result) {
	// Sort by network name, then endpoint URL.
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.network != b.network {
			return a.network < b.network
		}
		return a.endpoint.URL < b.endpoint.URL
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NETWORK\tENDPOINT\tSTATUS\tLATENCY\tBLOCK")
	fmt.Fprintln(w, strings.Repeat("-", 12)+"\t"+
		strings.Repeat("-", 40)+"\t"+
		strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 10))

	for _, r := range results {
		status, latency, block := "down", "—", "—"
		if r.endpoint.Healthy {
			status = "up"
			latency = fmt.Sprintf("%dms", r.endpoint.Latency.Milliseconds())
			block = fmt.Sprintf("%d", r.endpoint.BlockNumber)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.network, r.endpoint.URL, status, latency, block)
	}
	w.Flush()
}
