package service

import (
	"context"

	"frontend/client"
	"frontend/model"
	"frontend/util"
)

const (
	DefaultRowsPerPage = 10

	// seriesOffset bounds how many historical points the detail chart asks
	// for, matching the service contract.
	seriesOffset = 20
)

// RowsPerPageOptions are the page sizes the list screen offers.
var RowsPerPageOptions = []int{10, 25, 100}

type StockService interface {
	ListRows(ctx context.Context, userID string) ([]model.StockRow, error)
	Subscribe(ctx context.Context, userID, tick string) error
	Series(ctx context.Context, userID, tick string) (*model.Series, error)
	UpdateStatus(ctx context.Context, userID, tick string, status bool) (bool, error)
}

type StockServiceImpl struct {
	api *client.StockAPIClient
}

func NewStockService(api *client.StockAPIClient) StockService {
	return &StockServiceImpl{api: api}
}

func (s *StockServiceImpl) ListRows(ctx context.Context, userID string) ([]model.StockRow, error) {
	return s.api.ListSubscriptions(ctx, userID)
}

func (s *StockServiceImpl) Subscribe(ctx context.Context, userID, tick string) error {
	return s.api.AddSubscription(ctx, userID, tick)
}

func (s *StockServiceImpl) Series(ctx context.Context, userID, tick string) (*model.Series, error) {
	return s.api.GetSeries(ctx, userID, tick, util.TodayLabel(), seriesOffset)
}

func (s *StockServiceImpl) UpdateStatus(ctx context.Context, userID, tick string, status bool) (bool, error) {
	return s.api.SetSubscriptionStatus(ctx, userID, tick, status)
}

// Paginate slices one page out of the already-fetched set. Page changes never
// trigger an upstream call; the whole list lives in the response being built.
func Paginate(rows []model.StockRow, page, perPage int) []model.StockRow {
	if perPage <= 0 {
		perPage = DefaultRowsPerPage
	}
	if page < 0 {
		page = 0
	}

	start := page * perPage
	if start >= len(rows) {
		return nil
	}

	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}
