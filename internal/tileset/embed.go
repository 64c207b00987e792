// Package tileset builds the tile catalog from embedded tile data.
package tileset

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// DefaultFile is the embedded tile set used when no other is given.
const DefaultFile = "tiles.json"
