// Package util provides content hashing and view front matter parsing.
package util

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gomarkdown/markdown"
)

// FrontMatterDelimiter opens and closes the TOML block at the top of a view document.
const FrontMatterDelimiter = "%%%"

// ErrNoFrontMatter is returned when a document does not start with a front matter block.
var ErrNoFrontMatter = errors.New("no front matter")

type FrontMatter struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	// Hidden views are routable but left out of the navigation bar.
	Hidden bool `toml:"hidden"`
}

func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func ContentHashString(content string) string {
	return ContentHash([]byte(content))
}

// SplitFrontMatter decodes the leading front matter block of md and returns it
// along with the remaining body. Documents without a block yield ErrNoFrontMatter.
func SplitFrontMatter(md []byte) (*FrontMatter, []byte, error) {
	md = markdown.NormalizeNewlines(md)
	md = bytes.TrimLeft(md, "\n \t\r")

	delimiter := []byte(FrontMatterDelimiter)
	if !bytes.HasPrefix(md, delimiter) {
		return nil, nil, ErrNoFrontMatter
	}

	rest := md[len(delimiter):]
	closing := bytes.Index(rest, delimiter)
	if closing == -1 {
		return nil, nil, fmt.Errorf("invalid front matter format: missing closing %s", FrontMatterDelimiter)
	}

	info := &FrontMatter{}
	if _, err := toml.Decode(string(rest[:closing]), info); err != nil {
		return nil, nil, fmt.Errorf("failed to decode front matter: %w", err)
	}

	body := rest[closing+len(delimiter):]
	body = bytes.TrimPrefix(body, []byte("\n"))

	return info, body, nil
}
