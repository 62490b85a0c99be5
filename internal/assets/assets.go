// Package assets provides embedded assets for the application.
package assets

import (
	_ "embed"
)

// Favicon is the embedded source icon. The circular favicon is derived from it
// at runtime.
//
//go:embed favicon.png
var Favicon []byte
