package helper

import (
	"mime"
	"path/filepath"
	"strings"
)

const MIME_TYPE_TSV = "text/tab-separated-values"

// GetMimeType returns the MIME type for a file based on its extension
func GetMimeType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".tsv" {
		// Not registered in every system mime table.
		return MIME_TYPE_TSV
	}
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream" // Default for unknown file types
	}
	return mimeType
}

// GetDelimiter returns the field delimiter for a delimited text file.
func GetDelimiter(filename string) rune {
	if strings.HasPrefix(GetMimeType(filename), MIME_TYPE_TSV) {
		return '\t'
	}
	return ','
}
