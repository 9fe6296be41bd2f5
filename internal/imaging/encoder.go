package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxSourceSize is the largest accepted source file. The gate applies to
// the file on disk, not the encoded payload, which is ~33% larger.
const MaxSourceSize = 10 << 20 // 10 MiB

var (
	// ErrTooLarge means the source file exceeds MaxSourceSize.
	ErrTooLarge = errors.New("image is too large, please use an image under 10MB")

	// ErrNotAnImage means the file content does not sniff as image/*.
	ErrNotAnImage = errors.New("file does not look like an image")
)

// PendingImage is an encoded work photo awaiting submission. Exactly one
// exists at a time; attaching a new file replaces it.
type PendingImage struct {
	// DataURI is the wire representation: data:<mime>;base64,<payload>.
	DataURI string

	SourcePath string
	SourceSize int64
	MIME       string
}

// Name returns the source file's base name.
func (p *PendingImage) Name() string {
	return filepath.Base(p.SourcePath)
}

// HumanSize renders the source size for display, e.g. "1.4 MB".
func (p *PendingImage) HumanSize() string {
	const kb, mb = 1 << 10, 1 << 20
	switch {
	case p.SourceSize >= mb:
		return fmt.Sprintf("%.1f MB", float64(p.SourceSize)/mb)
	case p.SourceSize >= kb:
		return fmt.Sprintf("%.1f KB", float64(p.SourceSize)/kb)
	default:
		return fmt.Sprintf("%d B", p.SourceSize)
	}
}

// Encode reads the file at path and produces the data-URI payload the
// backend accepts. Oversized or non-image files are rejected without
// touching any state.
func Encode(path string) (*PendingImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read image: %s is a directory", path)
	}
	if info.Size() > MaxSourceSize {
		return nil, ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, ErrNotAnImage
	}

	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	return &PendingImage{
		DataURI:    b.String(),
		SourcePath: path,
		SourceSize: info.Size(),
		MIME:       mime,
	}, nil
}
