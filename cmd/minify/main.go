package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

func main() {
	var (
		srcDir = flag.String("src", "templates", "Directory holding the HTML templates")
		outDir = flag.String("out", "dist/templates", "Directory to write minified templates to")
	)
	flag.Parse()

	count, err := minifyDir(newMinifier(), *srcDir, *outDir)
	if err != nil {
		log.Fatalf("Failed to minify templates: %v", err)
	}
	fmt.Printf("✅ Minified %d templates into %s\n", count, *outDir)
}

// newMinifier returns an HTML minifier that leaves Go template actions intact.
func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		TemplateDelims:   html.GoTemplateDelims,
	})
	return m
}

// minifyDir minifies every .html file under srcDir into the same relative path under outDir.
func minifyDir(m *minify.M, srcDir, outDir string) (int, error) {
	count := 0
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if err := minifyFile(m, path, filepath.Join(outDir, rel)); err != nil {
			return fmt.Errorf("minify %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

func minifyFile(m *minify.M, srcPath, dstPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes("text/html", src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	originalSize := len(src)
	minifiedSize := len(minified)
	ratio := 0.0
	if originalSize > 0 {
		ratio = float64(originalSize-minifiedSize) / float64(originalSize) * 100
	}
	fmt.Printf("📦 %s: %d bytes → %d bytes (%.1f%% reduction)\n",
		srcPath, originalSize, minifiedSize, ratio)

	return nil
}
