package file

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// ResourceScheme prefixes resource paths.
const ResourceScheme = "resource://"

// Storage reads resources.
type Storage interface {
	// Read returns the full content of the resource.
	Read(ctx context.Context, path string) ([]byte, error)
	// Exists reports whether the resource exists. It returns false on any error.
	Exists(ctx context.Context, path string) bool
	// Hash returns the hex encoded SHA-1 of the resource content.
	Hash(ctx context.Context, path string) (string, error)
}

// ResourcePath ensures path carries the resource scheme.
func ResourcePath(path string) string {
	if strings.HasPrefix(path, ResourceScheme) {
		return path
	}
	return ResourceScheme + path
}

// ResolveResource strips the resource scheme and leading slashes, returning
// a path relative to the storage root.
func ResolveResource(path string) string {
	path = strings.TrimPrefix(path, ResourceScheme)
	return strings.TrimLeft(path, "/")
}

// hashReader returns the hex SHA-1 of everything read from r.
// SHA-1 matches the content hashes used for resource fingerprints.
func hashReader(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToHashFile, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
