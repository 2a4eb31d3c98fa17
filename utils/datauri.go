package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

const maxSlipBytes = 5 * 1024 * 1024

var (
	ErrNotDataURL   = errors.New("not a base64 data URL")
	ErrNotImage     = errors.New("content type must be image/*")
	ErrSlipTooLarge = errors.New("image exceeds 5MB limit")
)

// ValidateImageDataURL ตรวจสลิปที่ส่งมาเป็น data URL เช่น "data:image/png;base64,...."
// คืน content type ถ้าผ่าน
func ValidateImageDataURL(s string) (string, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", ErrNotDataURL
	}
	rest := strings.TrimPrefix(s, "data:")

	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", ErrNotDataURL
	}
	contentType := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrNotDataURL
	}
	if len(data) > maxSlipBytes {
		return "", ErrSlipTooLarge
	}
	return contentType, nil
}
