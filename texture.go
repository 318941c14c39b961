package main

import (
	"image"
	"image/draw"
	"os"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	lru "github.com/hashicorp/golang-lru"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

// TextureWrap selects the sampler addressing mode per axis. Coordinates
// outside [0,1] are resolved by the mode, not clamped by the shader stage.
type TextureWrap int32

const (
	WrapRepeat         TextureWrap = gl.REPEAT
	WrapMirroredRepeat TextureWrap = gl.MIRRORED_REPEAT
	WrapClampToEdge    TextureWrap = gl.CLAMP_TO_EDGE
)

type TextureFilter int32

const (
	FilterNearest             TextureFilter = gl.NEAREST
	FilterLinear              TextureFilter = gl.LINEAR
	FilterLinearMipmapLinear  TextureFilter = gl.LINEAR_MIPMAP_LINEAR
	FilterNearestMipmapLinear TextureFilter = gl.NEAREST_MIPMAP_LINEAR
)

// Texture is a GL 2D texture. It is read-only once built; rebuilding means
// building a new one.
type Texture struct {
	id            uint32
	width, height int
}

// Bind makes the texture current on the given unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// TextureBuilder configures wrap, filter and mipmap state before the pixel
// upload. Defaults are repeat wrapping and linear filtering.
type TextureBuilder struct {
	sWrap, tWrap TextureWrap
	minFilter    TextureFilter
	magFilter    TextureFilter
	genMipmap    bool
}

func NewTextureBuilder() *TextureBuilder {
	return &TextureBuilder{
		sWrap:     WrapRepeat,
		tWrap:     WrapRepeat,
		minFilter: FilterLinear,
		magFilter: FilterLinear,
	}
}

func (b *TextureBuilder) Wrap(s, t TextureWrap) *TextureBuilder {
	b.sWrap, b.tWrap = s, t
	return b
}

// Filter sets the minification and magnification filters. mag can only be
// nearest or linear; mipmap variants silently fall back to linear.
func (b *TextureBuilder) Filter(min, mag TextureFilter) *TextureBuilder {
	b.minFilter = min
	switch mag {
	case FilterNearest, FilterLinear:
		b.magFilter = mag
	default:
		b.magFilter = FilterLinear
	}
	return b
}

func (b *TextureBuilder) GenMipmap() *TextureBuilder {
	b.genMipmap = true
	return b
}

// Build uploads RGBA pixels. Must run on the GL thread.
func (b *TextureBuilder) Build(width, height int, pix []uint8) *Texture {
	t := &Texture{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(b.sWrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(b.tWrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(b.minFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(b.magFilter))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if b.genMipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func loadImage(fname string) ([]uint8, image.Rectangle, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, image.Rectangle{}, errors.Wrap(err, fname)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba.Pix, img.Bounds(), nil
}

const textureCacheSize = 16

var textureCache *lru.Cache

func initTextureCache() error {
	var err error
	textureCache, err = lru.NewWithEvict(textureCacheSize, func(key, value interface{}) {
		tex := value.(*Texture)
		mainthread.CallNonBlock(func() {
			tex.Release()
		})
	})
	return err
}

// loadTexture decodes a file and builds a GL texture, sharing one texture
// per path through the cache. Must be called off the GL thread; the upload
// itself is dispatched to it.
func loadTexture(fname string, builder *TextureBuilder) (*Texture, error) {
	if cached, ok := textureCache.Get(fname); ok {
		return cached.(*Texture), nil
	}
	pix, rect, err := loadImage(fname)
	if err != nil {
		return nil, err
	}
	var tex *Texture
	mainthread.Call(func() {
		tex = builder.Build(rect.Dx(), rect.Dy(), pix)
	})
	textureCache.Add(fname, tex)
	return tex, nil
}

// noiseImage renders tiling-friendly RGBA pixels from opensimplex noise.
// Color runs between a dark and a light tone, alpha follows a second
// noise channel so the blended pipeline has real transparency to show.
func noiseImage(size int, seed int64) []uint8 {
	sim := opensimplex.NewWithSeed(seed)
	pix := make([]uint8, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float32(x)/float32(size), float32(y)/float32(size)
			v := (1 + float32(sim.Eval2(float64(fx)*4, float64(fy)*4))) / 2
			a := (1 + float32(sim.Eval3(float64(fx)*8, float64(fy)*8, 7))) / 2
			pix = append(pix,
				uint8(mix(40, 240, v)),
				uint8(mix(90, 200, v)),
				uint8(mix(160, 60, v)),
				uint8(mix(64, 255, a)),
			)
		}
	}
	return pix
}
