package storefront

import (
	"embed"
	"io/fs"
)

//go:embed static
var assetsFS embed.FS

var subStaticFS = func() (fs.FS, error) {
	return fs.Sub(assetsFS, "static")
}
