package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/ucgdeck/internal/util"
)

// LoadImage reads an image from a local path or an http(s) URL.
func LoadImage(src string) (image.Image, error) {
	if isURL(src) {
		return DownloadImage(src)
	}
	img, err := imaging.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", src, err)
	}
	return img, nil
}

// DownloadImage downloads and decodes an image.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", url, err)
	}
	return img, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
