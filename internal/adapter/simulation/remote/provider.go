package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"evoview/internal/app/ports"
	"evoview/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var ErrMissingBaseURL = errors.New("simulation base url is required")

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Provider talks to a simulation service over HTTP:
// POST /step, POST /train (plain text summary), GET /world (JSON snapshot).
type Provider struct {
	baseURL string
	timeout time.Duration
	client  *client.Client
}

func NewProvider(cfg Config) (*Provider, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	c, err := client.NewClient(client.WithDialTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("new simulation client: %w", err)
	}
	return &Provider{baseURL: base, timeout: cfg.Timeout, client: c}, nil
}

func (p *Provider) Step(ctx context.Context) error {
	_, err := p.call(ctx, consts.MethodPost, "/step")
	return err
}

func (p *Provider) Train(ctx context.Context) (string, error) {
	body, err := p.call(ctx, consts.MethodPost, "/train")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (p *Provider) World(ctx context.Context) (world.Snapshot, error) {
	body, err := p.call(ctx, consts.MethodGet, "/world")
	if err != nil {
		return world.Snapshot{}, err
	}
	var out world.Snapshot
	if err := json.Unmarshal(body, &out); err != nil {
		return world.Snapshot{}, ports.SimulationError("decode world", err)
	}
	if err := out.Validate(); err != nil {
		return world.Snapshot{}, ports.SimulationError("decode world", err)
	}
	return out, nil
}

func (p *Provider) call(ctx context.Context, method, path string) ([]byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(p.baseURL + path)
	if err := p.client.DoTimeout(ctx, req, resp, p.timeout); err != nil {
		return nil, ports.SimulationError(strings.TrimPrefix(path, "/"), err)
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, ports.SimulationError(strings.TrimPrefix(path, "/"), fmt.Errorf("status %d: %s", code, strings.TrimSpace(string(resp.Body()))))
	}
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
