// Package templates embeds the HTML views the controllers render.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
