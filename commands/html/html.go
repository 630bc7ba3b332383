// Package html embeds the static assets for the 'serve' web UI.
package html

import "embed"

//go:embed index.html
var HTML embed.FS
