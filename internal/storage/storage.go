package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/efileconnect/efc_backend/internal/apperrors"
)

// MaxFileSizeBytes is the upload size cap enforced before accepting content.
const MaxFileSizeBytes = 10 << 20 // 10 MiB

// allowedExtensions is the upload extension allow-list.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"xlsx": {},
	"png":  {},
}

// BlobStore accepts a byte stream plus a logical grouping key and returns a
// stable locator. Implementations validate size and extension before accept
// and bound their calls with context timeouts.
type BlobStore interface {
	// Store uploads content of the given size under the grouping key and
	// returns the locator for later Load/Delete.
	Store(ctx context.Context, content io.Reader, size int64, filename, groupKey string) (string, error)

	// Load retrieves stored content by locator. The caller closes the reader.
	Load(ctx context.Context, locator string) (io.ReadCloser, error)

	// Delete removes stored content by locator.
	Delete(ctx context.Context, locator string) error
}

// ValidateUpload checks size and extension against the accept rules and
// returns the normalized extension. All failures wrap apperrors.ErrValidation.
func ValidateUpload(size int64, filename string) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("%w: file is empty", apperrors.ErrValidation)
	}
	if size > MaxFileSizeBytes {
		return "", fmt.Errorf("%w: file exceeds maximum allowed size of 10MB", apperrors.ErrValidation)
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(path.Base(filename)), "."))
	if ext == "" {
		return "", fmt.Errorf("%w: file must have an extension", apperrors.ErrValidation)
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported file type .%s", apperrors.ErrValidation, ext)
	}
	return ext, nil
}
