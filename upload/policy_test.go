package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uploadkit/upload"
)

func TestAcceptedMIMETypes(t *testing.T) {
	tests := []struct {
		ext     string
		want    []string
		covered bool
	}{
		{ext: "jpg", want: []string{"image/jpeg", "image/pjpeg"}, covered: true},
		{ext: "jpeg", want: []string{"image/jpeg", "image/pjpeg"}, covered: true},
		{ext: "png", want: []string{"image/png"}, covered: true},
		{ext: "gif", want: []string{"image/gif"}, covered: true},
		{ext: "pdf", want: []string{"application/pdf"}, covered: true},
		{ext: "csv", want: []string{"text/csv", "text/plain"}, covered: true},
		{ext: "zip", want: []string{"application/zip", "application/x-zip-compressed"}, covered: true},
		{ext: "exe", covered: false},
		{ext: "webp", covered: false},
		{ext: "", covered: false},
	}

	for _, tt := range tests {
		t.Run("ext "+tt.ext, func(t *testing.T) {
			got, ok := upload.AcceptedMIMETypes(tt.ext)

			assert.Equal(t, tt.covered, ok)
			if tt.covered {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
