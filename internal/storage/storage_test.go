package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/storage"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		filename string
		wantExt  string
		wantErr  bool
	}{
		{"pdf ok", 100, "report.pdf", "pdf", false},
		{"docx ok", 100, "contract.docx", "docx", false},
		{"xlsx ok", 100, "sheet.xlsx", "xlsx", false},
		{"png ok", 100, "scan.png", "png", false},
		{"extension is case-insensitive", 100, "REPORT.PDF", "pdf", false},
		{"at the size cap", storage.MaxFileSizeBytes, "report.pdf", "pdf", false},
		{"empty file", 0, "report.pdf", "", true},
		{"negative size", -1, "report.pdf", "", true},
		{"over the size cap", storage.MaxFileSizeBytes + 1, "report.pdf", "", true},
		{"no extension", 100, "report", "", true},
		{"disallowed extension", 100, "run.exe", "", true},
		{"disallowed extension jpg", 100, "photo.jpg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := storage.ValidateUpload(tt.size, tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}
