package model

// --- STOCK LIST ---

// StockRow is one subscribed ticker as returned by GET /stocks.
type StockRow struct {
	Tick           string  `json:"tick"`
	Company        string  `json:"company"`
	Currency       string  `json:"currency"`
	Status         bool    `json:"status"`
	PriceYesterday float64 `json:"price_yesterday"`
	PriceToday     float64 `json:"price_today"`
}

// Diff is derived at render time and never persisted.
func (r StockRow) Diff() float64 {
	return r.PriceToday - r.PriceYesterday
}

// DiffClass picks the css class for the 差分 column. A diff of exactly zero
// counts as a loss.
func (r StockRow) DiffClass() string {
	if r.Diff() > 0 {
		return "positive"
	}
	return "negative"
}

// --- TIME SERIES ---

// Series holds the intraday prices for one ticker as two parallel slices,
// chronological as returned by the stock service. Status carries the
// authoritative notification flag for the requesting user.
type Series struct {
	Dates  []string  `json:"dates"`
	Prices []float64 `json:"prices"`
	Status bool      `json:"status"`
}
