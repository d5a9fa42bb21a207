// Package upstream lee órdenes, facturas, productos y gastos del backend
// REST del punto de venta.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/pkg/config"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// maxBodyBytes tope de lectura por respuesta.
const maxBodyBytes = 32 << 20

var (
	_ repository.OrderSource   = (*Client)(nil)
	_ repository.ProductSource = (*Client)(nil)
	_ repository.ExpenseSource = (*Client)(nil)
)

// Client adaptador HTTP de solo lectura. Todas las peticiones pasan por un
// limitador de tasa compartido.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	loc        *time.Location
	log        *logger.Logger
}

// NewClient construye el cliente a partir de la configuración de origen.
// Las fechas sin zona del backend se leen en loc (nil = UTC).
func NewClient(cfg config.SourceConfig, loc *time.Location, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		loc:        loc,
		log:        log.Component("upstream"),
	}
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// ListOrders GET {base}/orders → {data: [...]}.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var env struct {
		Data []orderPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/orders", &env); err != nil {
		return nil, err
	}
	return toOrders(env.Data, entity.KindOrder, c.loc), nil
}

// ListInvoices GET {base}/invoices → {data: [...]}.
func (c *Client) ListInvoices(ctx context.Context) ([]entity.Order, error) {
	var env struct {
		Data []orderPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/invoices", &env); err != nil {
		return nil, err
	}
	return toOrders(env.Data, entity.KindInvoice, c.loc), nil
}

// ListProducts GET {base}/products → {products: [...]}.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var env struct {
		Products []productPayload `json:"products"`
	}
	if err := c.getJSON(ctx, "/products", &env); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(env.Products))
	for _, p := range env.Products {
		out = append(out, p.toEntity(c.loc))
	}
	return out, nil
}

// ListExpenses GET {base}/expenses → {data: [...]}.
func (c *Client) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	var env struct {
		Data []expensePayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/expenses", &env); err != nil {
		return nil, err
	}
	out := make([]entity.Expense, 0, len(env.Data))
	for _, e := range env.Data {
		out = append(out, e.toEntity(c.loc))
	}
	return out, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("upstream %s: %w: %v", path, domain.ErrSourceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("upstream %s: crear request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("upstream %s: %w: %v", path, domain.ErrSourceUnavailable, ctx.Err())
		}
		return fmt.Errorf("upstream %s: %w: %v", path, domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("upstream %s: %w: leer respuesta: %v", path, domain.ErrUpstream, err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(body)).
		Msg("upstream: respuesta")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream %s: %w: HTTP %d: %s", path, domain.ErrUpstream, resp.StatusCode, snippet(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("upstream %s: %w: deserializar: %v", path, domain.ErrUpstream, err)
	}
	return nil
}

func snippet(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
