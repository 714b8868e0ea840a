// Package static embeds the stylesheet and the scripts for the cosmetic behaviors.
package static

import "embed"

//go:embed css/*.css js/*.js
var FS embed.FS
