// Package data provides the level files shipped with the game.
package data

import (
	"embed"
	"io/fs"
)

// levelFS embeds all level files from the levels directory at build time.
//
//go:embed levels/*.dat
var levelFS embed.FS

// Levels returns the embedded levels, rooted so that "cave.dat" opens
// levels/cave.dat.
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		// The directory is embedded above, so this is unreachable.
		panic(err)
	}
	return sub
}
