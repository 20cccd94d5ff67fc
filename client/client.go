package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mezonai/wavesgo/config"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

type Config struct {
	NodeURL string
	ChainID types.ChainID
	Timeout time.Duration
	// MaxRequestsPerSecond throttles the default requestor when positive.
	MaxRequestsPerSecond int
	// Requestor overrides the default net/http requestor.
	Requestor Requestor
}

// NodeClient is the typed REST façade of a node. It holds no per-call state and is safe
// for concurrent use.
type NodeClient struct {
	cfg       Config
	baseURL   string
	requestor Requestor
}

func NewClient(cfg Config) *NodeClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	requestor := cfg.Requestor
	if requestor == nil {
		httpRequestor := NewHTTPRequestor(cfg.Timeout)
		if cfg.MaxRequestsPerSecond > 0 {
			httpRequestor.WithRateLimit(cfg.MaxRequestsPerSecond)
		}
		requestor = httpRequestor
	}
	return &NodeClient{
		cfg:       cfg,
		baseURL:   strings.TrimRight(cfg.NodeURL, "/"),
		requestor: requestor,
	}
}

// ConfigFromProfile targets the public node of a network profile.
func ConfigFromProfile(p config.Profile) Config {
	return Config{NodeURL: p.URL, ChainID: p.ChainID, Timeout: DefaultTimeout}
}

// ConfigFromFile builds a client config from a resolved configuration file.
func ConfigFromFile(r config.Resolved) Config {
	return Config{
		NodeURL:              r.NodeURL,
		ChainID:              r.Profile.ChainID,
		Timeout:              r.Timeout,
		MaxRequestsPerSecond: r.MaxRequestsPerSecond,
	}
}

func (c *NodeClient) ChainID() types.ChainID {
	return c.cfg.ChainID
}

func (c *NodeClient) NodeURL() string {
	return c.baseURL
}

func (c *NodeClient) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *NodeClient) get(ctx context.Context, path string, query url.Values) (jsonx.Value, error) {
	return checkNodeError(c.requestor.Get(ctx, c.url(path, query)))
}

func (c *NodeClient) post(ctx context.Context, path string, body interface{}) (jsonx.Value, error) {
	return checkNodeError(c.requestor.Post(ctx, c.url(path, nil), body))
}

func (c *NodeClient) postText(ctx context.Context, path string, query url.Values, text string) (jsonx.Value, error) {
	return checkNodeError(c.requestor.PostText(ctx, c.url(path, query), text))
}

// checkNodeError applies the node error translation to any Requestor, not only HTTPRequestor.
func checkNodeError(v jsonx.Value, err error) (jsonx.Value, error) {
	if err != nil {
		return jsonx.Value{}, err
	}
	if err := nodeError(v); err != nil {
		return jsonx.Value{}, err
	}
	return v, nil
}

func pathUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}
