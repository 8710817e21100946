package storage

import (
	"errors"
	"path"
	"strings"
)

var ErrInvalidPath = errors.New("invalid storage path")

// normalizePath turns an object path into a clean, relative, slash
// separated key. Paths that climb out of the root are rejected.
func normalizePath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "", ErrInvalidPath
	}
	return p, nil
}
