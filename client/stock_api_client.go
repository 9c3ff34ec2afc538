package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"frontend/customerrors"
	"frontend/middleware"
	"frontend/model"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// identityHeader scopes list, series and status calls to the current user.
const identityHeader = "x-user-id"

// StockAPIClient wraps every call the frontend makes against the stock
// service. Responses are decoded into typed structs and shape-checked here, so
// a malformed payload surfaces as ErrBadPayload instead of leaking zero values
// into the views. All calls are single-shot: no retry, transport timeout only.
type StockAPIClient struct {
	client *resty.Client
}

func NewStockAPIClient(baseURL string) *StockAPIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		})

	client.OnAfterResponse(middleware.UpstreamTraceMiddleware)

	return &StockAPIClient{
		client: client,
	}
}

// Register creates the user record and returns the assigned identifier as an
// opaque string. The id sent in the body is a throwaway; the service assigns
// its own and the response value always wins.
func (s *StockAPIClient) Register(ctx context.Context, email string) (string, error) {
	var user model.User
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(model.RegisterRequest{ID: uuid.NewString(), Email: email}).
		SetResult(&user).
		Post("/users")

	if err != nil {
		return "", fmt.Errorf("%w: register: %v", customerrors.ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return "", customerrors.ErrUserAlreadyExists
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: register returned %d", customerrors.ErrUnavailable, resp.StatusCode())
	}
	if user.ID <= 0 {
		return "", fmt.Errorf("%w: register response has no id", customerrors.ErrBadPayload)
	}

	return strconv.FormatInt(user.ID, 10), nil
}

// ListSubscriptions fetches the caller's watch-list. Rows come back fresh on
// every call; nothing is cached between fetches.
func (s *StockAPIClient) ListSubscriptions(ctx context.Context, userID string) ([]model.StockRow, error) {
	var rows []model.StockRow
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(identityHeader, userID).
		SetResult(&rows).
		Get("/stocks")

	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", customerrors.ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: list returned %d", customerrors.ErrUnavailable, resp.StatusCode())
	}

	for i := range rows {
		if rows[i].Tick == "" {
			return nil, fmt.Errorf("%w: list row %d has no tick", customerrors.ErrBadPayload, i)
		}
	}

	return rows, nil
}

// AddSubscription subscribes the user to tick. There are no partial-add
// semantics: an unknown ticker is ErrTickerNotFound, anything else that is not
// a 2xx is ErrUnavailable.
func (s *StockAPIClient) AddSubscription(ctx context.Context, userID, tick string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(model.AddStockRequest{UserID: userID, Tick: tick}).
		Post("/stocks/" + tick)

	if err != nil {
		return fmt.Errorf("%w: add %s: %v", customerrors.ErrUnavailable, tick, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return customerrors.ErrTickerNotFound
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: add %s returned %d", customerrors.ErrUnavailable, tick, resp.StatusCode())
	}

	return nil
}

// GetSeries fetches the price history for tick together with the caller's
// authoritative notification status. offset bounds how many points the service
// returns; its exact trading-day semantics live on the service side.
func (s *StockAPIClient) GetSeries(ctx context.Context, userID, tick, asOfDate string, offset int) (*model.Series, error) {
	var series model.Series
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(identityHeader, userID).
		SetQueryParams(map[string]string{
			"tick":   tick,
			"date":   asOfDate,
			"offset": strconv.Itoa(offset),
		}).
		SetResult(&series).
		Get("/stocks/" + tick)

	if err != nil {
		return nil, fmt.Errorf("%w: series %s: %v", customerrors.ErrUnavailable, tick, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: series %s returned %d", customerrors.ErrUnavailable, tick, resp.StatusCode())
	}

	// The chart maps the two slices one-to-one; a length mismatch is not
	// renderable and must not reach the view.
	if len(series.Dates) != len(series.Prices) {
		return nil, fmt.Errorf("%w: series %s has %d dates for %d prices",
			customerrors.ErrBadPayload, tick, len(series.Dates), len(series.Prices))
	}

	return &series, nil
}

// SetSubscriptionStatus flips the notification flag and returns the value the
// service confirmed, which may differ from the requested one. Idempotent on
// the service side.
func (s *StockAPIClient) SetSubscriptionStatus(ctx context.Context, userID, tick string, status bool) (bool, error) {
	var echoed model.StatusResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(model.PatchStatusRequest{UserID: userID, Status: status}).
		SetResult(&echoed).
		Patch("/stocks/" + tick)

	if err != nil {
		return false, fmt.Errorf("%w: status %s: %v", customerrors.ErrUnavailable, tick, err)
	}
	if !resp.IsSuccess() {
		return false, fmt.Errorf("%w: status %s returned %d", customerrors.ErrUnavailable, tick, resp.StatusCode())
	}

	return echoed.Status, nil
}
