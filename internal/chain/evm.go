package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"
)

// EVMClient is a minimal JSON-RPC client for one EVM endpoint. All
// methods are read-only: the client never constructs or submits a
// state-changing transaction.
type EVMClient struct {
	url    string
	client *http.Client
}

// NewEVMClient creates a client pointed at url.
func NewEVMClient(url string) *EVMClient {
	return &EVMClient{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// URL returns the endpoint this client talks to.
func (c *EVMClient) URL() string { return c.url }

// BlockNumber returns the latest block number.
func (c *EVMClient) BlockNumber(ctx context.Context) (uint64, error) {
	result, err := c.call(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}
	n, err := resultToBig(result)
	if err != nil {
		return 0, fmt.Errorf("block number: %w", err)
	}
	return n.Uint64(), nil
}

// Balance returns the native balance in wei for address.
func (c *EVMClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	result, err := c.call(ctx, "eth_getBalance", address, "latest")
	if err != nil {
		return nil, err
	}
	wei, err := resultToBig(result)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return wei, nil
}

// BlockHeader holds summary data for a block header.
type BlockHeader struct {
	Number    uint64
	Hash      string
	Timestamp uint64
	GasUsed   uint64
	GasLimit  uint64
	BaseFee   *big.Int // nil on pre-EIP-1559 chains
}

// Age returns a human-readable relative age string.
func (b *BlockHeader) Age() string {
	if b.Timestamp == 0 {
		return "unknown"
	}
	diff := uint64(time.Now().Unix()) - b.Timestamp
	switch {
	case diff < 60:
		return fmt.Sprintf("%ds ago", diff)
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	default:
		return fmt.Sprintf("%dh ago", diff/3600)
	}
}

// LatestBlock fetches the latest block header (no transaction objects).
func (c *EVMClient) LatestBlock(ctx context.Context) (*BlockHeader, error) {
	result, err := c.call(ctx, "eth_getBlockByNumber", "latest", false)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("block not found")
	}
	raw, _ := json.Marshal(result)
	var rb struct {
		Number        string `json:"number"`
		Hash          string `json:"hash"`
		Timestamp     string `json:"timestamp"`
		GasUsed       string `json:"gasUsed"`
		GasLimit      string `json:"gasLimit"`
		BaseFeePerGas string `json:"baseFeePerGas"`
	}
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil, fmt.Errorf("parsing block: %w", err)
	}
	header := &BlockHeader{Hash: rb.Hash}
	if n, ok := parseBigHex(rb.Number); ok {
		header.Number = n.Uint64()
	}
	if ts, ok := parseBigHex(rb.Timestamp); ok {
		header.Timestamp = ts.Uint64()
	}
	if gu, ok := parseBigHex(rb.GasUsed); ok {
		header.GasUsed = gu.Uint64()
	}
	if gl, ok := parseBigHex(rb.GasLimit); ok {
		header.GasLimit = gl.Uint64()
	}
	if rb.BaseFeePerGas != "" {
		if bf, ok := parseBigHex(rb.BaseFeePerGas); ok {
			header.BaseFee = bf
		}
	}
	return header, nil
}

// Ping tests the endpoint and returns latency + block number.
func (c *EVMClient) Ping(ctx context.Context) (latency time.Duration, blockNum uint64, err error) {
	start := time.Now()
	result, err := c.call(ctx, "eth_blockNumber")
	latency = time.Since(start)
	if err != nil {
		return latency, 0, err
	}
	n, err := resultToBig(result)
	if err != nil {
		return latency, 0, err
	}
	return latency, n.Uint64(), nil
}

// --- internal JSON-RPC plumbing ---

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *EVMClient) call(ctx context.Context, method string, params ...interface{}) (interface{}, error) {
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(string(reqBody)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RPC request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	var result interface{}
	if err := json.Unmarshal(rpcResp.Result, &result); err != nil {
		return nil, fmt.Errorf("parsing result: %w", err)
	}

	return result, nil
}

// resultToBig interprets a JSON-RPC result as a hex quantity.
func resultToBig(result interface{}) (*big.Int, error) {
	hexStr, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected result type: %T", result)
	}
	n, ok := parseBigHex(hexStr)
	if !ok {
		return nil, fmt.Errorf("could not parse hex quantity: %s", hexStr)
	}
	return n, nil
}

func parseBigHex(s string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	return n, ok
}
