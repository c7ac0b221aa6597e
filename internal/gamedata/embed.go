// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the level definitions and house layouts at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
