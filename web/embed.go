// Package web holds the HTML templates and static assets served by cmd/api.
package web

import "embed"

//go:embed templates static
var FS embed.FS
