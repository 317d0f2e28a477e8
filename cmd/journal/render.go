package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/fs"
	"github.com/akeil/journal/pkg/render"
)

func doRender(s settings, p *paper, textFile string, width, height int, out string) error {
	c, err := p.config()
	if err != nil {
		return err
	}

	d := journal.Draft{Config: c}
	if textFile != "" {
		b, err := os.ReadFile(textFile)
		if err != nil {
			return err
		}
		d.Content = string(b)
	}

	rc := render.NewContext(s.dataDir)
	if d.Content != "" {
		fmt.Printf("%v load fonts\n", ellipsis)
		<-rc.Preload()
		if !rc.Loaded(c.Font) {
			fmt.Printf("%v font %q not found in %q, using fallback\n", crossmark, c.Font, s.dataDir)
		}
	}

	img, err := rc.Page(d, width, height)
	if err != nil {
		return err
	}

	err = fs.WriteFile(out, func(w io.Writer) error {
		return render.WritePNG(img, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, out, err)
		return err
	}

	fmt.Printf("%v %v paper saved as %q.\n", checkmark, c.Pattern.DisplayName(), out)
	return nil
}

func doSwatches(p *paper, width, height int, outDir string) error {
	c, err := p.config()
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, pattern := range journal.Patterns {
		pc := c
		pc.Pattern = pattern
		group.Go(func() error {
			return renderSwatch(pc, width, height, outDir)
		})
	}
	return group.Wait()
}

func renderSwatch(c journal.PaperConfig, width, height int, outDir string) error {
	path := filepath.Join(outDir, c.Pattern.String()+".png")
	img := render.Paper(c, width, height)

	err := fs.WriteFile(path, func(w io.Writer) error {
		return render.WritePNG(img, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, c.Pattern, err)
		return err
	}

	fmt.Printf("%v %v saved as %q.\n", checkmark, c.Pattern.DisplayName(), path)
	return nil
}
