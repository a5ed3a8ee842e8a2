package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"strings"

	"github.com/decker502/radial/pkg/embedded"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultIconDir is where element icons are looked up when no explicit path is registered.
const DefaultIconDir = "assets/icons"

// ResourceManager is responsible for loading and caching wheel element icons.
//
// It implements wheel.AssetProvider: icons are resolved by element ID, decoded once,
// and handed to the wheel as plain image.Image textures. The GPU-side ebiten.Image
// is created lazily the first time the renderer asks for it.
//
// Paths starting with "assets/" or "data/" are read from the embedded resources;
// any other path is read from disk, so user configs may point at their own icons.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	rm.RegisterIcon(3, "assets/icons/griffon.png")
//	tex, err := rm.LoadTexture(3)
type ResourceManager struct {
	iconPaths    map[wheel.ElementID]string // Explicit icon paths: element ID -> path
	textureCache map[string]*wheel.Texture  // Decoded textures: path -> Texture
	imageCache   map[imageKey]*ebiten.Image // GPU images created for rendering
	fontSources  map[string]*text.GoTextFaceSource
}

type imageKey struct {
	tex           *wheel.Texture
	premultiplied bool
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		iconPaths:    make(map[wheel.ElementID]string),
		textureCache: make(map[string]*wheel.Texture),
		imageCache:   make(map[imageKey]*ebiten.Image),
		fontSources:  make(map[string]*text.GoTextFaceSource),
	}
}

// RegisterIcon sets the icon path used for an element.
// An empty path restores the default lookup.
func (rm *ResourceManager) RegisterIcon(id wheel.ElementID, path string) {
	if path == "" {
		delete(rm.iconPaths, id)
		return
	}
	rm.iconPaths[id] = path
}

// IconPath returns the path LoadTexture will use for an element.
func (rm *ResourceManager) IconPath(id wheel.ElementID) string {
	if p, ok := rm.iconPaths[id]; ok {
		return p
	}
	return fmt.Sprintf("%s/%d.png", DefaultIconDir, id)
}

// LoadTexture loads the icon texture for an element.
//
// Parameters:
//   - id: The element ID.
//
// Returns:
//   - The decoded texture, cached by path.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadTexture(id wheel.ElementID) (*wheel.Texture, error) {
	return rm.LoadTextureFile(rm.IconPath(id))
}

// LoadTextureFile loads and caches a texture from the given path.
func (rm *ResourceManager) LoadTextureFile(path string) (*wheel.Texture, error) {
	if cached, exists := rm.textureCache[path]; exists {
		return cached, nil
	}

	file, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	tex := &wheel.Texture{Image: img, Width: b.Dx(), Height: b.Dy()}
	rm.textureCache[path] = tex
	return tex, nil
}

// EbitenImage returns the GPU image for a texture, creating it on first use.
//
// When premultiplied is true the texture's non-premultiplied pixel buffer is taken
// as already premultiplied, so icons exported with premultiplied alpha are not
// multiplied a second time. Returns nil for textures without pixel data.
func (rm *ResourceManager) EbitenImage(tex *wheel.Texture, premultiplied bool) *ebiten.Image {
	if tex == nil || tex.Image == nil {
		return nil
	}
	key := imageKey{tex: tex, premultiplied: premultiplied}
	if img, ok := rm.imageCache[key]; ok {
		return img
	}

	src := tex.Image
	if img, ok := src.(*ebiten.Image); ok {
		rm.imageCache[key] = img
		return img
	}
	if premultiplied {
		src = asPremultiplied(src)
	}
	img := ebiten.NewImageFromImage(src)
	rm.imageCache[key] = img
	return img
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// An empty path selects the bundled Go Regular font.
//
// Parameters:
//   - path: The font file path, or "" for the built-in font.
//   - size: The font size in points.
//
// Returns:
//   - A text face sharing one cached source per path.
//   - An error if the font cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	source, ok := rm.fontSources[path]
	if !ok {
		data := goregular.TTF
		if path != "" {
			f, err := openResource(path)
			if err != nil {
				return nil, fmt.Errorf("failed to open font file %s: %w", path, err)
			}
			data, err = io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// asPremultiplied reinterprets a straight-alpha buffer as premultiplied
func asPremultiplied(src image.Image) image.Image {
	if n, ok := src.(*image.NRGBA); ok {
		return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
	}
	return src
}

func openResource(path string) (io.ReadCloser, error) {
	p := strings.TrimPrefix(path, "./")
	if embedded.IsInitialized() && (strings.HasPrefix(p, "assets/") || strings.HasPrefix(p, "data/")) {
		return embedded.Open(p)
	}
	return os.Open(path)
}
