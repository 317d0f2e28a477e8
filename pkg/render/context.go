package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/logging"
)

type faceKey struct {
	font journal.Font
	size int
}

// Context holds font data and cached font faces for rendering text.
//
// Font families are read from DataDir/fonts/<Family>.ttf. Families which
// are not (yet) loaded are rendered with the built-in Go font.
//
// If multiple pages are rendered, they should use the same Context.
type Context struct {
	DataDir  string
	fonts    map[journal.Font]*opentype.Font
	faces    map[faceKey]font.Face
	fallback *opentype.Font
	mx       sync.Mutex
}

// NewContext sets up a new rendering context.
//
// dataDir should point to a directory with a subdirectory 'fonts'.
func NewContext(dataDir string) *Context {
	return &Context{
		DataDir: dataDir,
		fonts:   make(map[journal.Font]*opentype.Font),
		faces:   make(map[faceKey]font.Face),
	}
}

// Preload reads all journal fonts in the background.
//
// Rendering does not wait for this; the returned channel is closed when
// all fonts have been processed.
func (c *Context) Preload() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		var group errgroup.Group
		for _, f := range journal.Fonts {
			f := f
			group.Go(func() error {
				return c.loadFont(f)
			})
		}
		err := group.Wait()
		if err != nil {
			logging.Warning("Failed to preload fonts: %v", err)
		}
	}()

	return done
}

// Loaded tells if the given font family is available.
func (c *Context) Loaded(f journal.Font) bool {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.fonts[f] != nil
}

func (c *Context) loadFont(f journal.Font) error {
	p := filepath.Join(c.DataDir, "fonts", string(f)+".ttf")
	logging.Debug("Load font %q from %q", f, p)

	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		logging.Info("No font file for %q, using fallback", f)
		return nil
	} else if err != nil {
		return err
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %v", p, err)
	}

	c.mx.Lock()
	defer c.mx.Unlock()
	c.fonts[f] = parsed
	// faces created with the fallback font are outdated now
	for k := range c.faces {
		if k.font == f {
			delete(c.faces, k)
		}
	}

	return nil
}

// Face returns a font face for the given family and size in pixels.
func (c *Context) Face(f journal.Font, size int) (font.Face, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	key := faceKey{f, size}
	cached := c.faces[key]
	if cached != nil {
		return cached, nil
	}

	src := c.fonts[f]
	if src == nil {
		fb, err := c.lazyLoadFallback()
		if err != nil {
			return nil, err
		}
		src = fb
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	c.faces[key] = face
	return face, nil
}

func (c *Context) lazyLoadFallback() (*opentype.Font, error) {
	if c.fallback != nil {
		// already loaded
		return c.fallback, nil
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	c.fallback = f

	return f, nil
}
