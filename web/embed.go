// Package web embeds the HTML templates for server-side rendering.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
