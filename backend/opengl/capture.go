package opengl

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// JPEGQuality is the quality screenshots are encoded with.
const JPEGQuality = 90

// ReadFramebuffer copies the current read buffer into an image. Call it
// after the frame is rendered and before the buffers are swapped.
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	FlipRows(img.Pix, width*4, height)
	return img
}

// FlipRows reverses the row order of pix in place. OpenGL's origin is
// bottom-left, image's is top-left.
func FlipRows(pix []byte, stride, rows int) {
	tmp := make([]byte, stride)
	for y := 0; y < rows/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bot := pix[(rows-1-y)*stride : (rows-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// WriteJPEG encodes img to path.
func WriteJPEG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close screenshot: %w", cerr)
		}
	}()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return nil
}
