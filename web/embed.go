// Package web embeds the dashboard templates and static assets into the
// binary.
package web

import "embed"

// Assets holds templates/ (html/template sources) and static/ (JS, CSS).
//
//go:embed templates static
var Assets embed.FS
