package chain_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

// rpcMock creates a test HTTP server that serves a fixed JSON-RPC
// response per method. Unknown methods return an RPC error.
func rpcMock(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     int    `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		} else {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
		}
	}))
}

// rpcErrorServer creates a test HTTP server that always returns a JSON-RPC error.
func rpcErrorServer(t *testing.T, code int, msg string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": code, "message": msg},
		})
	}))
}

func TestBlockNumber(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0x3e8", // 1000
	})
	defer srv.Close()

	n, err := chain.NewEVMClient(srv.URL).BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), n)
}

func TestBalance(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBalance": "0x22b1c8c1227a0000", // 2.5 ETH in wei
	})
	defer srv.Close()

	wei, err := chain.NewEVMClient(srv.URL).Balance(context.Background(), "0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("2500000000000000000", 10)
	assert.Zero(t, wei.Cmp(want))
	assert.Equal(t, "2.5", chain.FormatWei(wei))
}

func TestLatestBlock(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":        "0x3e8",
			"hash":          "0xabc",
			"timestamp":     "0x68a0f000",
			"gasUsed":       "0x5208",
			"gasLimit":      "0x1c9c380",
			"baseFeePerGas": "0x3b9aca00", // 1 gwei
		},
	})
	defer srv.Close()

	header, err := chain.NewEVMClient(srv.URL).LatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), header.Number)
	assert.Equal(t, uint64(21000), header.GasUsed)
	assert.Equal(t, uint64(0x68a0f000), header.Timestamp)
	require.NotNil(t, header.BaseFee)
	assert.Equal(t, int64(1_000_000_000), header.BaseFee.Int64())
}

func TestLatestBlockWithoutBaseFee(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":    "0x10",
			"timestamp": "0x1",
			"gasUsed":   "0x0",
			"gasLimit":  "0x1c9c380",
		},
	})
	defer srv.Close()

	header, err := chain.NewEVMClient(srv.URL).LatestBlock(context.Background())
	require.NoError(t, err)
	assert.Nil(t, header.BaseFee)
}

func TestEstimateFeesPerGas(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":        "0x3e8",
			"timestamp":     "0x1",
			"gasUsed":       "0x0",
			"gasLimit":      "0x1c9c380",
			"baseFeePerGas": "0x3b9aca00", // 1 gwei
		},
		"eth_maxPriorityFeePerGas": "0x5f5e100", // 0.1 gwei
	})
	defer srv.Close()

	est, err := chain.NewEVMClient(srv.URL).EstimateFeesPerGas(context.Background())
	require.NoError(t, err)

	// maxFee = 2*baseFee + tip = 2.1 gwei
	require.NotNil(t, est.MaxFeePerGas)
	assert.Equal(t, int64(2_100_000_000), est.MaxFeePerGas.Int64())
	require.NotNil(t, est.MaxPriorityFeePerGas)
	assert.Equal(t, int64(100_000_000), est.MaxPriorityFeePerGas.Int64())
}

func TestEstimateFeesPerGasLegacyChain(t *testing.T) {
	// No baseFeePerGas in the header and no eth_maxPriorityFeePerGas
	// support: both fields stay absent, the call still succeeds.
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":    "0x3e8",
			"timestamp": "0x1",
			"gasUsed":   "0x0",
			"gasLimit":  "0x1c9c380",
		},
	})
	defer srv.Close()

	est, err := chain.NewEVMClient(srv.URL).EstimateFeesPerGas(context.Background())
	require.NoError(t, err)
	assert.Nil(t, est.MaxFeePerGas)
	assert.Nil(t, est.MaxPriorityFeePerGas)
}

func TestEstimateFeesPerGasTipUnsupported(t *testing.T) {
	// Tip query rejected by the node: estimate degrades, no error.
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":        "0x3e8",
			"timestamp":     "0x1",
			"gasUsed":       "0x0",
			"gasLimit":      "0x1c9c380",
			"baseFeePerGas": "0x3b9aca00",
		},
	})
	defer srv.Close()

	est, err := chain.NewEVMClient(srv.URL).EstimateFeesPerGas(context.Background())
	require.NoError(t, err)
	require.NotNil(t, est.MaxFeePerGas)
	assert.Equal(t, int64(2_000_000_000), est.MaxFeePerGas.Int64())
	assert.Nil(t, est.MaxPriorityFeePerGas)
}

func TestRPCErrorSurfaced(t *testing.T) {
	srv := rpcErrorServer(t, -32000, "header not found")
	defer srv.Close()

	client := chain.NewEVMClient(srv.URL)
	_, err := client.BlockNumber(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header not found")

	_, err = client.Balance(context.Background(), "0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.Error(t, err)
}

func TestMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not valid json`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := chain.NewEVMClient(srv.URL).BlockNumber(context.Background())
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0x64",
	})
	defer srv.Close()

	latency, block, err := chain.NewEVMClient(srv.URL).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), block)
	assert.GreaterOrEqual(t, latency, time.Duration(0))
}
