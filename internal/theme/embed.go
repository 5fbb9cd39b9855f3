package theme

import "embed"

// EmbeddedThemes contains the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS
