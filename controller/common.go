package controller

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// User-facing messages, surfaced synchronously at the view boundary. No error
// propagates past a controller.
const (
	msgTickerNotFound   = "該当する銘柄が見つかりませんでした"
	msgTickerRequired   = "銘柄IDを入力してください"
	msgAddFailed        = "銘柄の追加に失敗しました。時間をおいて再度お試しください"
	msgEmailInvalid     = "メールアドレスの形式が正しくありません"
	msgRegisterFailed   = "登録に失敗しました。時間をおいて再度お試しください"
	msgFetchFailed      = "データの取得に失敗しました"
	msgToggleFailed     = "通知設定の更新に失敗しました"
	msgChartUnavailable = "チャートを取得できませんでした"
)

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// pageURL builds a detail-screen URL carrying the navigation context: ticker,
// company and last-known status, so the detail view can paint immediately
// while its own fetch is in flight. extra holds flags like an open dialog or
// a toggle outcome.
func pageURL(tick, company string, status bool, extra url.Values) string {
	v := url.Values{}
	v.Set("tick", tick)
	v.Set("company", company)
	v.Set("status", strconv.FormatBool(status))
	for key, vals := range extra {
		for _, val := range vals {
			v.Add(key, val)
		}
	}
	return "/stocks/detail?" + v.Encode()
}
