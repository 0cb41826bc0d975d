// Package terrain provides the embedded terrain and theme catalogs and
// utilities for loading them.
package terrain

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
