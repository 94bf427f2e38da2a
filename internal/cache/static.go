package cache

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/debemdeboas/grocery-store/internal/util"
)

// StaticHashes maps a static asset URL path to the weak ETag of its content.
// Weak tags stay valid whether or not the body is sent compressed.
type StaticHashes = Cache[string, string]

// HashStatic walks fsys and records an ETag for every file under urlPrefix.
func HashStatic(fsys fs.FS, urlPrefix string) (*StaticHashes, error) {
	hashes := NewCache[string, string]()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("hash %s: %w", p, err)
		}
		hashes.Set(path.Join(urlPrefix, p), `W/"`+util.ContentHash(data)[:16]+`"`)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return hashes, nil
}
