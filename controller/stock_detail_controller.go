package controller

import (
	"net/http"
	"net/url"
	"strconv"

	"frontend/middleware"
	"frontend/model"
	"frontend/service"
	"frontend/util"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog/log"
)

type StockDetailController struct {
	stockSvc service.StockService
}

func NewStockDetailController(stockSvc service.StockService) *StockDetailController {
	return &StockDetailController{stockSvc: stockSvc}
}

func (ctrl *StockDetailController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/detail", ctrl.showDetail)
	router.GET("/detail/chart", ctrl.renderChart)
	router.POST("/detail/status", ctrl.updateStatus)
}

type detailPage struct {
	Tick        string
	Company     string
	Date        string
	Status      bool
	StatusLabel string
	StatusValue string
	ChartURL    string

	OpenDialogURL  string
	CloseDialogURL string
	DialogOpen     bool

	Toggled     bool
	ToggleError string
	PageError   string
}

// showDetail renders the chart screen for one ticker. The caller supplies
// tick, company and last-known status as navigation context; the status shown
// is a placeholder until the series fetch resolves, at which point the
// service's value always wins.
func (ctrl *StockDetailController) showDetail(c *gin.Context) {
	tick := c.Query("tick")
	if tick == "" {
		// No context to render from; back to the list.
		c.Redirect(http.StatusFound, "/stocks")
		return
	}

	company := c.Query("company")
	status, _ := strconv.ParseBool(c.Query("status"))
	userID, _ := middleware.CurrentUser(c)

	var pageErr string
	series, err := ctrl.stockSvc.Series(c.Request.Context(), userID, tick)
	if err != nil {
		log.Error().Err(err).Str("tick", tick).Msg("series fetch failed")
		pageErr = msgFetchFailed
	} else {
		status = series.Status
	}

	data := detailPage{
		Tick:           tick,
		Company:        company,
		Date:           util.TodayLabel(),
		Status:         status,
		StatusLabel:    statusLabel(status),
		StatusValue:    strconv.FormatBool(status),
		ChartURL:       chartURL(tick),
		OpenDialogURL:  pageURL(tick, company, status, url.Values{"dialog": {"open"}}),
		CloseDialogURL: pageURL(tick, company, status, nil),
		DialogOpen:     c.Query("dialog") == "open",
		Toggled:        c.Query("toggled") == "1",
		PageError:      pageErr,
	}
	if c.Query("toggle_failed") == "1" {
		data.ToggleError = msgToggleFailed
	}

	c.HTML(http.StatusOK, "stock_detail.html", data)
}

// renderChart serves the line chart the detail screen embeds. The chart does
// its own fetch per mount, like every other view.
func (ctrl *StockDetailController) renderChart(c *gin.Context) {
	tick := c.Query("tick")
	if tick == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	userID, _ := middleware.CurrentUser(c)
	series, err := ctrl.stockSvc.Series(c.Request.Context(), userID, tick)
	if err != nil {
		log.Error().Err(err).Str("tick", tick).Msg("chart fetch failed")
		c.String(http.StatusBadGateway, msgChartUnavailable)
		return
	}

	points := make([]opts.LineData, 0, len(series.Prices))
	for _, p := range series.Prices {
		points = append(points, opts.LineData{Value: p})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: tick}),
		charts.WithYAxisOpts(opts.YAxis{Name: "株価"}),
	)
	// The dates come pre-formatted and in order; they map one-to-one onto the
	// series with no re-sorting or gap filling.
	line.SetXAxis(series.Dates).AddSeries(tick, points)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		log.Error().Err(err).Str("tick", tick).Msg("chart render failed")
	}
}

// updateStatus issues the PATCH the moment the switch flips. The redirect
// carries whatever the service echoed back, never the optimistic position; on
// failure it carries the last confirmed value instead.
func (ctrl *StockDetailController) updateStatus(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var form model.ToggleForm
	_ = c.ShouldBind(&form)
	if form.Tick == "" {
		c.Redirect(http.StatusFound, "/stocks")
		return
	}

	confirmed, err := ctrl.stockSvc.UpdateStatus(c.Request.Context(), userID, form.Tick, form.Status)
	if err != nil {
		log.Error().Err(err).Str("tick", form.Tick).Msg("status update failed")
		c.Redirect(http.StatusSeeOther,
			pageURL(form.Tick, form.Company, form.Prev, url.Values{"toggle_failed": {"1"}}))
		return
	}

	c.Redirect(http.StatusSeeOther,
		pageURL(form.Tick, form.Company, confirmed, url.Values{"toggled": {"1"}}))
}

func statusLabel(status bool) string {
	if status {
		return "オン"
	}
	return "オフ"
}

func chartURL(tick string) string {
	v := url.Values{}
	v.Set("tick", tick)
	return "/stocks/detail/chart?" + v.Encode()
}
