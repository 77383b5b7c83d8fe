// Package content embeds the default reference data: heroes, monsters,
// equipment, consumables, skills, dungeons and the level table.
package content

import "embed"

// FS holds the embedded YAML content, laid out one directory per kind.
//
//go:embed weapons armors consumables heroes monsters dungeons skills levels
var FS embed.FS
