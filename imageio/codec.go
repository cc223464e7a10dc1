package imageio

import (
	"bufio"
	"fmt"
	goimage "image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"lumenray/core"
)

// Dump writes the image to output/<name>.<ext>, selecting PNG, JPEG or
// PPM by the extension implied by name (PNG if none is given). If the
// target file already exists it is renamed to output/<name>-bk.<ext>
// first, never silently clobbered.
func (img *Image) Dump(outputDir, name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, ext)
	if ext == "" {
		ext = ".png"
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(outputDir, base+ext)
	if _, err := os.Stat(path); err == nil {
		backup := filepath.Join(outputDir, base+"-bk"+ext)
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("backing up %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img.toRGBA(), &jpeg.Options{Quality: 95})
	case ".ppm":
		return img.writePPM(f)
	default:
		return png.Encode(f, img.toRGBA())
	}
}

func (img *Image) toRGBA() *goimage.RGBA {
	out := goimage.NewRGBA(goimage.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			c := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{
				R: EncodeByte(c.X),
				G: EncodeByte(c.Y),
				B: EncodeByte(c.Z),
				A: 255,
			})
		}
	}
	return out
}

func (img *Image) writePPM(f *os.File) error {
	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintf(w, "P3\n%d %d\n255\n", img.W, img.H)
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			c := img.At(x, y)
			fmt.Fprintf(w, "%d %d %d\n", EncodeByte(c.X), EncodeByte(c.Y), EncodeByte(c.Z))
		}
	}
	return nil
}

// LoadPPM reads a plain (P3) PPM file back into an Image.
func LoadPPM(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var magic string
	var w, h, maxVal int
	if _, err := fmt.Fscan(f, &magic, &w, &h, &maxVal); err != nil {
		return nil, fmt.Errorf("parsing PPM header: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b int
			if _, err := fmt.Fscan(f, &r, &g, &b); err != nil {
				return nil, fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			img.Set(x, y, core.NewColor(decodeByte(r, maxVal), decodeByte(g, maxVal), decodeByte(b, maxVal)))
		}
	}
	return img, nil
}

func decodeByte(v, maxVal int) float64 {
	return float64(v) / float64(maxVal)
}
