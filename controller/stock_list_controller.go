package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"frontend/customerrors"
	"frontend/middleware"
	"frontend/model"
	"frontend/service"
	"frontend/util"
	"frontend/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StockListController struct {
	stockSvc service.StockService
}

func NewStockListController(stockSvc service.StockService) *StockListController {
	return &StockListController{stockSvc: stockSvc}
}

func (ctrl *StockListController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", ctrl.showList)
	router.POST("/add", ctrl.addStock)
}

type stockRowView struct {
	Tick           string
	Company        string
	PriceYesterday string
	PriceToday     string
	Diff           string
	DiffClass      string
	DetailURL      string
}

type pageLink struct {
	Label string
	URL   string
}

type listPage struct {
	Rows         []stockRowView
	Total        int
	RangeLabel   string
	PrevURL      string
	NextURL      string
	PerPageLinks []pageLink

	OpenDialogURL  string
	CloseDialogURL string
	DialogOpen     bool
	DialogError    string
	DialogInput    string

	Added     string
	PageError string
}

// showList fetches the watch-list for the current session and renders one
// page of it. Pagination is sliced here from the full fetched set.
func (ctrl *StockListController) showList(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	rows, err := ctrl.stockSvc.ListRows(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("watch-list fetch failed")
		c.HTML(http.StatusOK, "stocks.html", listPage{PageError: msgFetchFailed})
		return
	}

	page := queryInt(c, "page", 0)
	perPage := queryInt(c, "rows", service.DefaultRowsPerPage)

	data := buildListPage(rows, page, perPage)
	data.DialogOpen = c.Query("dialog") == "open"
	data.Added = c.Query("added")

	c.HTML(http.StatusOK, "stocks.html", data)
}

// addStock handles the dialog submission. Success redirects back so the next
// GET re-fetches the list from scratch with a cleared input; failure
// re-renders with the dialog open and the typed ticker retained.
func (ctrl *StockListController) addStock(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var form model.AddStockForm
	_ = c.ShouldBind(&form)
	tick := strings.TrimSpace(form.Tick)

	if !validator.ValidateTicker(tick) {
		ctrl.renderAddFailure(c, userID, tick, msgTickerRequired)
		return
	}

	if err := ctrl.stockSvc.Subscribe(c.Request.Context(), userID, tick); err != nil {
		log.Error().Err(err).Str("tick", tick).Msg("add subscription failed")
		msg := msgAddFailed
		if errors.Is(err, customerrors.ErrTickerNotFound) {
			msg = msgTickerNotFound
		}
		ctrl.renderAddFailure(c, userID, tick, msg)
		return
	}

	c.Redirect(http.StatusSeeOther, "/stocks?added="+url.QueryEscape(tick))
}

// renderAddFailure re-renders the list with the dialog still open. The rows
// are fetched again rather than patched in place, so the table always shows
// the service's current state.
func (ctrl *StockListController) renderAddFailure(c *gin.Context, userID, tick, msg string) {
	rows, err := ctrl.stockSvc.ListRows(c.Request.Context(), userID)
	data := buildListPage(rows, 0, service.DefaultRowsPerPage)
	if err != nil {
		data.PageError = msgFetchFailed
	}

	data.DialogOpen = true
	data.DialogError = msg
	data.DialogInput = tick

	c.HTML(http.StatusOK, "stocks.html", data)
}

func buildListPage(rows []model.StockRow, page, perPage int) listPage {
	if perPage <= 0 {
		perPage = service.DefaultRowsPerPage
	}
	if page < 0 {
		page = 0
	}

	visible := service.Paginate(rows, page, perPage)

	views := make([]stockRowView, 0, len(visible))
	for _, row := range visible {
		views = append(views, stockRowView{
			Tick:           row.Tick,
			Company:        row.Company,
			PriceYesterday: util.FormatPrice(row.PriceYesterday, row.Currency),
			PriceToday:     util.FormatPrice(row.PriceToday, row.Currency),
			Diff:           util.FormatDiff(row.Diff()),
			DiffClass:      row.DiffClass(),
			DetailURL:      pageURL(row.Tick, row.Company, row.Status, nil),
		})
	}

	data := listPage{
		Rows:           views,
		Total:          len(rows),
		OpenDialogURL:  listURL(page, perPage, true),
		CloseDialogURL: listURL(page, perPage, false),
	}

	if len(visible) > 0 {
		first := page*perPage + 1
		last := page*perPage + len(visible)
		data.RangeLabel = fmt.Sprintf("%d–%d / %d", first, last, len(rows))
	} else {
		data.RangeLabel = fmt.Sprintf("0 / %d", len(rows))
	}

	if page > 0 {
		data.PrevURL = listURL(page-1, perPage, false)
	}
	if (page+1)*perPage < len(rows) {
		data.NextURL = listURL(page+1, perPage, false)
	}

	for _, n := range service.RowsPerPageOptions {
		// Changing the page size restarts from the first page.
		data.PerPageLinks = append(data.PerPageLinks, pageLink{
			Label: strconv.Itoa(n),
			URL:   listURL(0, n, false),
		})
	}

	return data
}

func listURL(page, perPage int, dialogOpen bool) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("rows", strconv.Itoa(perPage))
	if dialogOpen {
		v.Set("dialog", "open")
	}
	return "/stocks?" + v.Encode()
}
