// Package export writes the rendered site to a directory so it can be
// hosted by any static file server.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mtlprog/clinicsite/internal/service"
	"github.com/mtlprog/clinicsite/internal/static"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	notFoundFile = "404.html"
	assetsDir    = "static"
)

// Result lists the files written by an export, relative to its directory.
type Result struct {
	Files []string
}

// Site renders every page of site into outDir. Page paths become
// directories holding an index.html; assets go under static/.
func Site(ctx context.Context, site *service.SiteService, outDir string) (Result, error) {
	var res Result

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	for _, page := range site.Pages() {
		doc, err := site.Page(ctx, page.ID)
		if err != nil {
			return res, fmt.Errorf("render %s: %w", page.ID, err)
		}

		rel := pageFile(page.Path)
		if err := writeFile(outDir, rel, doc); err != nil {
			return res, err
		}
		res.Files = append(res.Files, rel)
	}

	doc, err := site.NotFound(ctx)
	if err != nil {
		return res, fmt.Errorf("render not found page: %w", err)
	}
	if err := writeFile(outDir, notFoundFile, doc); err != nil {
		return res, err
	}
	res.Files = append(res.Files, notFoundFile)

	assets := static.AssetFS()
	err = fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}

		rel := path.Join(assetsDir, p)
		if err := writeFile(outDir, rel, data); err != nil {
			return err
		}
		res.Files = append(res.Files, rel)
		return nil
	})
	if err != nil {
		return res, err
	}

	zerolog.Ctx(ctx).Info().
		Str("dir", outDir).
		Int("files", len(res.Files)).
		Msg("site exported")

	return res, nil
}

// pageFile maps a page path to the file that serves it.
func pageFile(pagePath string) string {
	trimmed := strings.Trim(pagePath, "/")
	if trimmed == "" {
		return "index.html"
	}
	return path.Join(trimmed, "index.html")
}

func writeFile(outDir, rel string, data []byte) error {
	full := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
