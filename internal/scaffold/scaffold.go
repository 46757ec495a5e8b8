// Package scaffold embeds the template files installed by `reviewloop init`.
package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the template tree rooted at its top level, with
// SKILL.md and scripts/ directly addressable.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The subtree is embedded at compile time; failure here means the
		// binary itself is broken.
		panic(err)
	}
	return sub
}
