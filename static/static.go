// Package static embeds the API documentation served at /static and /docs.
package static

import "embed"

//go:embed openapi.json openapi.html
var FS embed.FS
