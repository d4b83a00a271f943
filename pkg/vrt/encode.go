package vrt

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// EncodeImage returns the standard, padded base64 encoding of image.
func EncodeImage(image []byte) string {
	return base64.StdEncoding.EncodeToString(image)
}

// EncodeImageReader streams r through a standard base64 encoder.
func EncodeImageReader(r io.Reader) (string, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if _, err := io.Copy(enc, r); err != nil {
		return "", fmt.Errorf("vrt: read image: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("vrt: encode image: %w", err)
	}
	return sb.String(), nil
}
