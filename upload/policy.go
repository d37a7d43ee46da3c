package upload

// mimePolicy maps recognized file extensions to the set of MIME types
// considered authentic for that extension. Extensions absent from the table
// are passed through the cross-check; the allow-list is the only gate for
// them.
var mimePolicy = map[string][]string{
	"jpg":  {"image/jpeg", "image/pjpeg"},
	"jpeg": {"image/jpeg", "image/pjpeg"},
	"png":  {"image/png"},
	"gif":  {"image/gif"},
	"pdf":  {"application/pdf"},
	"doc":  {"application/msword"},
	"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"xls":  {"application/vnd.ms-excel"},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	"txt":  {"text/plain"},
	"csv":  {"text/csv", "text/plain"},
	"zip":  {"application/zip", "application/x-zip-compressed"},
}

// AcceptedMIMETypes returns the MIME types considered authentic for the
// given lowercase extension, and whether the extension is covered by the
// policy at all.
func AcceptedMIMETypes(ext string) ([]string, bool) {
	types, ok := mimePolicy[ext]
	return types, ok
}

// imageExtensions are the extensions the committer probes for pixel
// dimensions after a successful move.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
}
