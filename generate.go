package verso

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// Page is one output unit: a destination path plus final byte content.
type Page struct {
	Path    string
	Content []byte
}

// prepareDest enforces the overwrite policy. An existing destination is an
// OptionError unless force is set, in which case it is removed first. This
// is the only destructive step in the pipeline and it is always user
// opt-in.
func prepareDest(dest string, force bool) error {
	if _, err := os.Stat(dest); err == nil {
		if !force {
			return &OptionError{
				Msg:  "destination already exists",
				Hint: "use -f to force generation by deleting the destination",
			}
		}
		slog.Debug("removing existing destination", "dest", dest)
		if err := os.RemoveAll(dest); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.MkdirAll(dest, 0o755)
}

// writePages materializes every page, creating intermediate directories as
// needed.
func writePages(pages []Page) error {
	for _, page := range pages {
		if err := os.MkdirAll(filepath.Dir(page.Path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(page.Path, page.Content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// copyAssets copies the asset tree verbatim under the configured assets
// path in the destination. A missing asset directory is fine.
func copyAssets(assetsSrc, dest, assetsURL string) error {
	if _, err := os.Stat(assetsSrc); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	assetsDest := filepath.Join(dest, filepath.FromSlash(strings.TrimPrefix(assetsURL, "/")))
	slog.Debug("copying assets", "src", assetsSrc, "dest", assetsDest)
	return copy.Copy(assetsSrc, assetsDest)
}
