package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"frontend/config"
	"frontend/model"
	"frontend/session"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// stubBackend stands in for the stock service and counts every request it
// receives, so tests can assert that a given flow made no upstream call.
type stubBackend struct {
	srv       *httptest.Server
	hits      int32
	rows      []model.StockRow
	series    model.Series
	addStatus int
	patchFail bool
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	b := &stubBackend{
		series:    model.Series{Dates: []string{"09:00", "09:05"}, Prices: []float64{100, 101}, Status: true},
		addStatus: http.StatusOK,
	}

	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.hits, 1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/users":
			w.Write([]byte(`{"id": 7, "email": "a@b.co"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/stocks":
			json.NewEncoder(w).Encode(b.rows)
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/stocks/"):
			if b.patchFail {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			var body model.PatchStatusRequest
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(model.StatusResponse{Status: body.Status})
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/stocks/"):
			if b.addStatus != http.StatusOK {
				http.Error(w, "error", b.addStatus)
				return
			}
			w.Write([]byte(`{"ok": true}`))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/stocks/"):
			json.NewEncoder(w).Encode(b.series)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(b.srv.Close)

	return b
}

func (b *stubBackend) count() int32 {
	return atomic.LoadInt32(&b.hits)
}

func newRouter(b *stubBackend) *gin.Engine {
	cfg := &config.SystemConfigs{Config: &model.EnvConfig{ApiBaseUrl: b.srv.URL}}
	return SetupRouter(cfg)
}

func doRequest(r *gin.Engine, method, target, form string, authenticated bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "42"})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsWithoutSession(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	for _, target := range []string{"/stocks", "/stocks/detail?tick=7203.T", "/stocks/detail/chart?tick=7203.T"} {
		w := doRequest(r, http.MethodGet, target, "", false)
		if w.Code != http.StatusFound {
			t.Errorf("%s: status = %d, want 302", target, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: location = %q, want /", target, loc)
		}
	}

	if backend.count() != 0 {
		t.Errorf("backend hit %d times, want 0", backend.count())
	}
}

func TestSignupSkippedWhenAuthenticated(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodGet, "/", "", true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/stocks" {
		t.Errorf("location = %q, want /stocks", loc)
	}
	if backend.count() != 0 {
		t.Errorf("backend hit %d times, want 0", backend.count())
	}
}

func TestSignupValidationBlocksNetwork(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/signup", "email=not-an-email", false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "メールアドレスの形式が正しくありません") {
		t.Error("expected the validation message in the response")
	}
	if !strings.Contains(body, `value="not-an-email"`) {
		t.Error("expected the typed input to be retained")
	}
	if backend.count() != 0 {
		t.Errorf("backend hit %d times, want 0", backend.count())
	}
}

func TestSignupSuccess(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/signup", "email=a%40b.co", false)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/stocks" {
		t.Errorf("location = %q, want /stocks", loc)
	}

	var stored string
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			stored = c.Value
		}
	}
	if stored != "7" {
		t.Errorf("stored identifier = %q, want 7", stored)
	}
	if backend.count() != 1 {
		t.Errorf("backend hit %d times, want 1", backend.count())
	}
}

func TestWatchListRendersRows(t *testing.T) {
	backend := newStubBackend(t)
	backend.rows = []model.StockRow{
		{Tick: "AAPL", Company: "Apple Inc.", Currency: "JPY", Status: true, PriceYesterday: 15240, PriceToday: 16980},
		{Tick: "7203.T", Company: "Toyota Motor Corporation", Currency: "JPY", PriceYesterday: 2000, PriceToday: 2000},
	}
	r := newRouter(backend)

	w := doRequest(r, http.MethodGet, "/stocks", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "AAPL") || !strings.Contains(body, "Toyota Motor Corporation") {
		t.Error("expected both rows in the table")
	}
	if !strings.Contains(body, "num positive") {
		t.Error("expected positive styling on the gaining row")
	}
	if !strings.Contains(body, "num negative") {
		t.Error("expected negative styling on the flat row")
	}
	if !strings.Contains(body, "+1,740") {
		t.Error("expected the formatted gain with a plus sign")
	}
}

func TestWatchListPagination(t *testing.T) {
	backend := newStubBackend(t)
	for i := 0; i < 25; i++ {
		backend.rows = append(backend.rows, model.StockRow{
			Tick:    fmt.Sprintf("TICK%02d", i),
			Company: fmt.Sprintf("Company %02d", i),
		})
	}
	r := newRouter(backend)

	w := doRequest(r, http.MethodGet, "/stocks?page=2&rows=10", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "TICK20") || !strings.Contains(body, "TICK24") {
		t.Error("expected rows 20-24 on page 2")
	}
	if strings.Contains(body, "TICK19") {
		t.Error("row 19 belongs to the previous page")
	}
	if !strings.Contains(body, "21–25 / 25") {
		t.Errorf("expected the range label for the final page")
	}

	// One list fetch for the mount; the page slicing itself costs nothing.
	if backend.count() != 1 {
		t.Errorf("backend hit %d times, want 1", backend.count())
	}
}

func TestAddStockNotFoundKeepsDialog(t *testing.T) {
	backend := newStubBackend(t)
	backend.rows = []model.StockRow{{Tick: "AAPL", Company: "Apple Inc.", Currency: "JPY"}}
	backend.addStatus = http.StatusNotFound
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/stocks/add", "tick=ZZZZ", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "該当する銘柄が見つかりませんでした") {
		t.Error("expected the not-found message")
	}
	if !strings.Contains(body, `value="ZZZZ"`) {
		t.Error("expected the typed ticker to be retained")
	}
	if !strings.Contains(body, "<dialog open>") {
		t.Error("expected the dialog to stay open")
	}
	if !strings.Contains(body, "AAPL") {
		t.Error("expected the existing list to still render")
	}
}

func TestAddStockServerErrorShowsAddFailure(t *testing.T) {
	backend := newStubBackend(t)
	backend.addStatus = http.StatusInternalServerError
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/stocks/add", "tick=7203.T", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "銘柄の追加に失敗しました") {
		t.Error("expected the add-failure message")
	}
	if strings.Contains(body, "登録に失敗しました") {
		t.Error("signup-registration wording must not appear on the add path")
	}
	if !strings.Contains(body, "<dialog open>") {
		t.Error("expected the dialog to stay open")
	}
}

func TestAddStockSuccessRedirects(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/stocks/add", "tick=GOOG", true)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/stocks?added=GOOG" {
		t.Errorf("location = %q, want /stocks?added=GOOG", loc)
	}
}

func TestDetailServerStatusOverridesContext(t *testing.T) {
	backend := newStubBackend(t)
	backend.series.Status = true
	r := newRouter(backend)

	// Navigation context says off; the fetched status says on.
	w := doRequest(r, http.MethodGet, "/stocks/detail?tick=7203.T&company=Toyota&status=false", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "オン") {
		t.Error("expected the server-confirmed status to be shown")
	}
}

func TestDetailWithoutContextRedirects(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodGet, "/stocks/detail", "", true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/stocks" {
		t.Errorf("location = %q, want /stocks", loc)
	}
	if backend.count() != 0 {
		t.Errorf("backend hit %d times, want 0", backend.count())
	}
}

func TestChartRenders(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodGet, "/stocks/detail/chart?tick=7203.T", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "echarts") {
		t.Error("expected the chart markup in the response")
	}
}

func TestToggleRedirectCarriesEchoedStatus(t *testing.T) {
	backend := newStubBackend(t)
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/stocks/detail/status",
		"tick=7203.T&company=Toyota&status=true&prev=false", true)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "status=true") || !strings.Contains(loc, "toggled=1") {
		t.Errorf("location = %q, want the echoed status and the ack flag", loc)
	}
}

func TestToggleFailureFallsBackToConfirmed(t *testing.T) {
	backend := newStubBackend(t)
	backend.patchFail = true
	r := newRouter(backend)

	w := doRequest(r, http.MethodPost, "/stocks/detail/status",
		"tick=7203.T&company=Toyota&status=true&prev=false", true)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "status=false") || !strings.Contains(loc, "toggle_failed=1") {
		t.Errorf("location = %q, want the last confirmed status and the failure flag", loc)
	}
}
