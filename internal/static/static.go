package static

import (
	"embed"
	"io/fs"
)

// Templates contains the html/template sources for every page.
//
//go:embed templates/*.gohtml
var Templates embed.FS

// Assets contains the files served under /static/.
//
//go:embed assets
var Assets embed.FS

// AssetFS returns Assets rooted at the assets directory.
func AssetFS() fs.FS {
	sub, err := fs.Sub(Assets, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path name.
		panic(err)
	}
	return sub
}
