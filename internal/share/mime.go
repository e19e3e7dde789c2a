package share

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// DefaultMIMEType is used when the audio type cannot be determined.
const DefaultMIMEType = "application/octet-stream"

var fileTypeMIME = map[tag.FileType]string{
	tag.MP3:  "audio/mpeg",
	tag.M4A:  "audio/mp4",
	tag.M4B:  "audio/mp4",
	tag.M4P:  "audio/mp4",
	tag.ALAC: "audio/mp4",
	tag.FLAC: "audio/flac",
	tag.OGG:  "audio/ogg",
	tag.DSF:  "audio/dsf",
}

var extMIME = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".opus": "audio/ogg",
	".wav":  "audio/wav",
	".dsf":  "audio/dsf",
}

// MIMEType returns the audio MIME type of the file at path, sniffed from
// its content and falling back to the extension.
func MIMEType(path string) string {
	if f, err := os.Open(path); err == nil {
		_, fileType, err := tag.Identify(f)
		f.Close()
		if err == nil {
			if m, ok := fileTypeMIME[fileType]; ok {
				return m
			}
		}
	}
	if m, ok := extMIME[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return DefaultMIMEType
}
