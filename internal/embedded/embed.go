// Package embedded carries the static reference tables compiled into the
// binary. The tables are YAML so they stay diffable and editable without
// touching Go source.
package embedded

import (
	"embed"
)

// FS embeds the symbol tables used for name resolution: Bayer letter codes
// and IAU constellation abbreviations.
//
//go:embed tables/*.yaml
var FS embed.FS
