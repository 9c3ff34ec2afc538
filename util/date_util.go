package util

import "time"

// TitleLayout is the ja-JP date shape shown on the screens and sent as the
// `date` query of the series endpoint (e.g. 2026/08/28).
const TitleLayout = "2006/01/02"

func TodayLabel() string {
	return time.Now().Format(TitleLayout)
}
