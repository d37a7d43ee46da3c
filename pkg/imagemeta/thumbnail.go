package imagemeta

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Thumbnail writes a variant of the image at srcPath scaled down to fit
// within width x height, preserving aspect ratio. The output format follows
// the dstPath extension; images already smaller than the bounds are written
// unchanged.
func Thumbnail(srcPath, dstPath string, width, height int) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	thumb := imaging.Fit(img, width, height, imaging.Lanczos)

	if err := imaging.Save(thumb, dstPath); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return nil
}
