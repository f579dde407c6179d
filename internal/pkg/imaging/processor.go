package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the webp decoder
)

// Rendition is one resized JPEG of a source image.
type Rendition struct {
	Width  int
	Height int
	Data   []byte
}

// ProcessedImage contains all variants of a processed image
type ProcessedImage struct {
	Original    []byte
	ContentType string
	Width       int
	Height      int
	Renditions  []Rendition
}

// Config for image processing
type Config struct {
	MaxWidth  int   // Max width for original (default 2000)
	MaxHeight int   // Max height for original (default 2000)
	Widths    []int // Rendition widths (default 400, 800, 1200)
	Quality   int   // JPEG quality 1-100 (default 85)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		MaxWidth:  2000,
		MaxHeight: 2000,
		Widths:    []int{400, 800, 1200},
		Quality:   85,
	}
}

// Processor handles image processing
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// Process fits the image inside the max bounds and produces one rendition per
// configured width narrower than the result. Everything is re-encoded as JPEG
// with EXIF orientation applied.
func (p *Processor) Process(reader io.Reader) (*ProcessedImage, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.config.MaxWidth || bounds.Dy() > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
	}

	result := &ProcessedImage{
		ContentType: "image/jpeg",
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
	}

	result.Original, err = p.encode(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode original: %w", err)
	}

	for _, w := range p.config.Widths {
		if w <= 0 || w >= result.Width {
			continue
		}
		resized := imaging.Resize(img, w, 0, imaging.Lanczos)
		data, err := p.encode(resized)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %dw rendition: %w", w, err)
		}
		result.Renditions = append(result.Renditions, Rendition{
			Width:  resized.Bounds().Dx(),
			Height: resized.Bounds().Dy(),
			Data:   data,
		})
	}

	return result, nil
}

func (p *Processor) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ValidateType checks if file is a valid image type
func ValidateType(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// GeneratePaths returns the storage keys of the original and of each width,
// e.g. images/hero/family-1.jpg and images/hero/family-1-800.jpg.
func GeneratePaths(prefix, filename string, widths []int) (original string, renditions map[int]string) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	prefix = strings.Trim(prefix, "/")

	original = fmt.Sprintf("%s/%s.jpg", prefix, base)
	renditions = make(map[int]string, len(widths))
	for _, w := range widths {
		renditions[w] = fmt.Sprintf("%s/%s-%d.jpg", prefix, base, w)
	}
	return original, renditions
}
