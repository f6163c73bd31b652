// Package assets embeds the bundled scene files.
package assets

import "embed"

// Scenes holds the JSON scenes under scenes/.
//
//go:embed scenes/*.json
var Scenes embed.FS
