package eel

import (
	"context"
	"strings"

	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/file"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/value"
)

// DefaultHashLength is the number of hash characters PathHash and ResourceHash return.
const DefaultHashLength = 8

// Resource is a stored resource addressed by the sha1 of its content.
type Resource interface {
	Sha1() string
}

// FileContentHelper reads resources from the configured storage.
type FileContentHelper struct {
	opts *options
	ctx  context.Context
}

func newFileContentHelper(o *options) *FileContentHelper {
	return &FileContentHelper{opts: o, ctx: context.Background()}
}

// WithContext returns a copy of the helper whose storage calls use ctx.
func (h *FileContentHelper) WithContext(ctx context.Context) *FileContentHelper {
	if ctx == nil {
		ctx = context.Background()
	}
	return &FileContentHelper{opts: h.opts, ctx: ctx}
}

// Path returns the content of a resource path ("resource://..." or relative)
// as a string, or false when it cannot be read.
func (h *FileContentHelper) Path(path string) any {
	content, ok := h.read(file.ResourcePath(path))
	if !ok {
		return false
	}
	return content
}

// PathHash returns the first length (default 8) characters of the sha1 of a
// resource path, or "" when it does not exist.
func (h *FileContentHelper) PathHash(path string, length ...int) string {
	storage := h.storage("pathHash")
	if storage == nil {
		return ""
	}
	sum, err := storage.Hash(h.ctx, file.ResourcePath(path))
	if err != nil {
		h.opts.logger.Debug("resource hash unavailable",
			logger.Helper("Carbon.FileContent"), logger.Path(path), logger.Error(err))
		return ""
	}
	return truncateHash(sum, optional(length, DefaultHashLength))
}

// Resource returns the content of a stored resource, or false when it cannot be read.
// r is a Resource or its sha1.
func (h *FileContentHelper) Resource(r any) any {
	sha1, ok := resourceSha1(r)
	if !ok {
		return false
	}
	content, ok := h.read(sha1)
	if !ok {
		return false
	}
	return content
}

// ResourceHash returns the first length (default 8) characters of the sha1 of
// a stored resource, or "" when it does not exist.
func (h *FileContentHelper) ResourceHash(r any, length ...int) string {
	sha1, ok := resourceSha1(r)
	if !ok {
		return ""
	}
	storage := h.storage("resourceHash")
	if storage == nil || !storage.Exists(h.ctx, sha1) {
		return ""
	}
	return truncateHash(sha1, optional(length, DefaultHashLength))
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *FileContentHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *FileContentHelper) read(path string) (string, bool) {
	storage := h.storage("read")
	if storage == nil {
		return "", false
	}
	data, err := storage.Read(h.ctx, path)
	if err != nil {
		h.opts.logger.Debug("resource not readable",
			logger.Helper("Carbon.FileContent"), logger.Path(path), logger.Error(err))
		return "", false
	}
	return string(data), true
}

func (h *FileContentHelper) storage(method string) file.Storage {
	if h.opts.storage == nil {
		h.opts.logger.Warn("no resource storage configured",
			logger.Helper("Carbon.FileContent"), logger.Method(method))
	}
	return h.opts.storage
}

func (h *FileContentHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.FileContent.path", 1, 1, pure(func(a []any) any { return h.Path(value.String(a[0])) })),
		function("Carbon.FileContent.pathHash", 1, 2, pure(func(a []any) any {
			return h.PathHash(value.String(a[0]), intArg(a, 1, DefaultHashLength))
		})),
		function("Carbon.FileContent.resource", 1, 1, pure(func(a []any) any { return h.Resource(a[0]) })),
		function("Carbon.FileContent.resourceHash", 1, 2, pure(func(a []any) any {
			return h.ResourceHash(a[0], intArg(a, 1, DefaultHashLength))
		})),
	}
}

func resourceSha1(r any) (string, bool) {
	var sha1 string
	switch t := r.(type) {
	case Resource:
		if t == nil {
			return "", false
		}
		sha1 = t.Sha1()
	case string:
		sha1 = file.ResolveResource(t)
	default:
		return "", false
	}
	sha1 = strings.TrimSpace(sha1)
	return sha1, sha1 != ""
}

// truncateHash returns the first length characters of sum. A negative length
// drops characters from the end.
func truncateHash(sum string, length int) string {
	if length < 0 {
		return sum[:max(len(sum)+length, 0)]
	}
	return sum[:min(length, len(sum))]
}
