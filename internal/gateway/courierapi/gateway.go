package courierapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"backoffice/internal/entities"
	"backoffice/internal/service/allocator"
	retrierconfig "backoffice/pkg/retrier"
	"backoffice/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "courier-api"

	createParcelsPath = "/api/v1/parcels"
	listParcelsPath   = "/api/v1/parcels/numbers"

	headerClientID = "X-Client-Id"
	headerAPIKey   = "X-Api-Key"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway talks to the remote courier parcel API over HTTP JSON. Credentials
// are per-call because every courier carries its own client id and key.
type Gateway struct {
	baseURL string
	httpc   httpDoer
	retrier retrier
}

func New(baseURL string, requestTimeout time.Duration) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatusErr,
	}

	return &Gateway{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: requestTimeout,
		},
		retrier: backoff_adapter.New(retryConfig),
	}
}

type createParcelsRequest struct {
	Count int `json:"count"`
}

type parcelsResponse struct {
	Numbers []string `json:"numbers"`
}

// CreateNewParcels регистрирует новые посылки на стороне курьера. Вызов
// не идемпотентный, поэтому без ретраев.
func (g *Gateway) CreateNewParcels(ctx context.Context, creds entities.CourierCredentials, count int) ([]string, error) {
	body, err := json.Marshal(createParcelsRequest{Count: count})
	if err != nil {
		return nil, fmt.Errorf("gateway courierapi, create parcels: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+createParcelsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway courierapi, create parcels: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setCredentials(req, creds)

	var resp parcelsResponse

	start := time.Now()
	err = g.doJSON(req, &resp)
	GatewayRequestDuration.WithLabelValues(serviceName, "CreateNewParcels", statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("gateway courierapi, create parcels: %w: %w", allocator.ErrRemoteAPI, err)
	}

	return resp.Numbers, nil
}

// FetchExistingParcelNumbers reads numbers already registered on the courier
// side. The call is idempotent and retried on transient failures.
func (g *Gateway) FetchExistingParcelNumbers(ctx context.Context, creds entities.CourierCredentials, count int) ([]string, error) {
	u, err := url.Parse(g.baseURL + listParcelsPath)
	if err != nil {
		return nil, fmt.Errorf("gateway courierapi, fetch parcel numbers: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	var resp parcelsResponse
	var attempt uint64

	start := time.Now()
	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if reqErr != nil {
			return reqErr
		}
		setCredentials(req, creds)
		return g.doJSON(req, &resp)
	})

	GatewayRequestDuration.WithLabelValues(serviceName, "FetchExistingParcelNumbers", statusLabel(err)).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, "FetchExistingParcelNumbers", statusLabel(err)).Inc()
	}

	if err != nil {
		return nil, fmt.Errorf("gateway courierapi, fetch parcel numbers: %w: %w", allocator.ErrRemoteAPI, err)
	}

	return resp.Numbers, nil
}

func (g *Gateway) doJSON(req *http.Request, out *parcelsResponse) error {
	resp, err := g.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &statusError{Code: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func setCredentials(req *http.Request, creds entities.CourierCredentials) {
	req.Header.Set(headerClientID, creds.ClientID)
	req.Header.Set(headerAPIKey, creds.APIKey)
}

type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("courier api http %d", e.Code)
}

func isRetryableStatusErr(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// сетевые ошибки и таймауты ретраим
		return true
	}

	switch statusErr.Code {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
