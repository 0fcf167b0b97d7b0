package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/proxline/proxline/internal/pkg/circuitbreaker"
	"github.com/proxline/proxline/internal/pkg/constants"
	"github.com/proxline/proxline/internal/pkg/database"
	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// versionCodes maps client-facing proxy versions to upstream API codes
var versionCodes = map[string]string{
	models.ProxyVersionIPv4:       "4",
	models.ProxyVersionIPv6:       "6",
	models.ProxyVersionIPv4Shared: "3",
}

// MarketGW talks to the upstream proxy reseller. The API key is part
// of the URL path; every response carries a "status" field and only
// "yes" means success.
type MarketGW struct {
	cfg     models.MarketConfig
	client  *http.Client
	cache   *database.RedisClient
	breaker *circuitbreaker.CircuitBreaker
}

// NewMarketGW creates a new market gateway
func NewMarketGW(cfg models.MarketConfig, cache *database.RedisClient, zapLogger *logger.ZapLogger) *MarketGW {
	return &MarketGW{
		cfg:     cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		cache:   cache,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("proxy-market"), zapLogger),
	}
}

type priceResponse struct {
	Status      string  `json:"status"`
	Error       string  `json:"error"`
	Price       float64 `json:"price"`
	PriceSingle float64 `json:"price_single"`
	Period      int     `json:"period"`
	Count       int     `json:"count"`
}

type wireItem struct {
	IP          string `json:"ip"`
	Host        string `json:"host"`
	Port        string `json:"port"`
	Type        string `json:"type"`
	Country     string `json:"country"`
	Date        string `json:"date"`
	DateEnd     string `json:"date_end"`
	Unixtime    int64  `json:"unixtime"`
	UnixtimeEnd int64  `json:"unixtime_end"`
	Descr       string `json:"descr"`
	Active      string `json:"active"`
}

type orderResponse struct {
	Status  string              `json:"status"`
	Error   string              `json:"error"`
	List    map[string]wireItem `json:"list"`
	Period  int                 `json:"period"`
	Country string              `json:"country"`
}

type checkResponse struct {
	Status      string `json:"status"`
	Error       string `json:"error"`
	ProxyStatus bool   `json:"proxy_status"`
}

// Quote prices (version, quantity, days) with the store markup
// applied. Results are cached for the configured TTL since upstream
// prices move slowly.
func (g *MarketGW) Quote(ctx context.Context, version string, quantity, days int) (*models.Quote, error) {
	code, ok := versionCodes[version]
	if !ok {
		return nil, fmt.Errorf("%w: unknown proxy version %q", models.ErrValidation, version)
	}

	cacheKey := fmt.Sprintf(constants.KeyQuoteCache, version, quantity, days)
	if cached, err := g.cache.Get(ctx, cacheKey); err == nil {
		var quote models.Quote
		if err := json.Unmarshal([]byte(cached), &quote); err == nil {
			return &quote, nil
		}
	}

	params := url.Values{}
	params.Set("version", code)
	params.Set("count", strconv.Itoa(quantity))
	params.Set("period", strconv.Itoa(days))

	var priced priceResponse
	if err := g.call(ctx, "getprice", params, &priced); err != nil {
		return nil, err
	}
	if priced.Status != "yes" {
		return nil, fmt.Errorf("%w: getprice rejected: %s", models.ErrUpstreamFailure, priced.Error)
	}

	quote := &models.Quote{
		TotalPrice:  math.Round(priced.Price * (1 + g.cfg.MarkupPercent/100)),
		PriceSingle: priced.PriceSingle,
		Days:        priced.Period,
		Quantity:    priced.Count,
		Currency:    "USD",
	}

	if data, err := json.Marshal(quote); err == nil {
		ttl := time.Duration(g.cfg.QuoteCacheTTL) * time.Second
		if err := g.cache.Set(ctx, cacheKey, data, ttl); err != nil {
			logger.Warn("Quote cache write failed", logger.Err(err))
		}
	}

	return quote, nil
}

// Buy purchases quantity leases and returns one entry per item
func (g *MarketGW) Buy(ctx context.Context, version string, quantity, days int, country, proxyType string) (*models.MarketOrder, error) {
	code, ok := versionCodes[version]
	if !ok {
		return nil, fmt.Errorf("%w: unknown proxy version %q", models.ErrValidation, version)
	}

	params := url.Values{}
	params.Set("version", code)
	params.Set("count", strconv.Itoa(quantity))
	params.Set("period", strconv.Itoa(days))
	params.Set("country", country)
	params.Set("type", proxyType)
	params.Set("auto_renew", "0")

	var order orderResponse
	if err := g.call(ctx, "buy", params, &order); err != nil {
		return nil, err
	}
	if order.Status != "yes" {
		return nil, fmt.Errorf("%w: buy rejected: %s", models.ErrUpstreamFailure, order.Error)
	}

	return g.toOrder(&order, version), nil
}

// Prolong extends one lease by period days
func (g *MarketGW) Prolong(ctx context.Context, itemID string, period int) (*models.MarketOrder, error) {
	params := url.Values{}
	params.Set("ids", itemID)
	params.Set("period", strconv.Itoa(period))

	var order orderResponse
	if err := g.call(ctx, "prolong", params, &order); err != nil {
		return nil, err
	}
	if order.Status != "yes" {
		return nil, fmt.Errorf("%w: prolong rejected: %s", models.ErrUpstreamFailure, order.Error)
	}

	return g.toOrder(&order, ""), nil
}

// Check reports whether a lease is still alive upstream
func (g *MarketGW) Check(ctx context.Context, itemID string) (bool, error) {
	params := url.Values{}
	params.Set("ids", itemID)

	var checked checkResponse
	if err := g.call(ctx, "check", params, &checked); err != nil {
		return false, err
	}
	if checked.Status != "yes" {
		return false, nil
	}

	return checked.ProxyStatus, nil
}

// call performs one upstream GET under the circuit breaker. The API
// key sits in the path, so the URL is never logged verbatim.
func (g *MarketGW) call(ctx context.Context, method string, params url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s/%s?%s", g.cfg.BaseURL, g.cfg.APIKey, method, params.Encode())

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create market request: %w", err)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: market %s: %v", models.ErrUpstreamFailure, method, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: market %s returned %d", models.ErrUpstreamFailure, method, resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: market %s decode: %v", models.ErrUpstreamFailure, method, err)
		}
		return nil
	})
	if err != nil {
		if err == circuitbreaker.ErrCircuitBreakerOpen || err == circuitbreaker.ErrTooManyRequests {
			return fmt.Errorf("%w: market unavailable: %v", models.ErrUpstreamFailure, err)
		}
		return err
	}

	return nil
}

func (g *MarketGW) toOrder(resp *orderResponse, version string) *models.MarketOrder {
	items := make(map[string]models.MarketItem, len(resp.List))
	for id, it := range resp.List {
		port, _ := strconv.Atoi(it.Port)
		items[id] = models.MarketItem{
			ID:          id,
			IP:          it.IP,
			Host:        it.Host,
			Port:        port,
			Version:     version,
			Type:        it.Type,
			Country:     it.Country,
			Date:        it.Date,
			DateEnd:     it.DateEnd,
			Unixtime:    it.Unixtime,
			UnixtimeEnd: it.UnixtimeEnd,
			Descr:       it.Descr,
			Active:      it.Active == "1",
		}
	}

	return &models.MarketOrder{
		Items:   items,
		Period:  resp.Period,
		Country: resp.Country,
	}
}
