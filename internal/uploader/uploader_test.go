package uploader

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
)

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func localUploader(t *testing.T) *Uploader {
	t.Helper()
	return New(&config.Config{UploadsDir: t.TempDir()})
}

func TestUploadLocalStoresWebp(t *testing.T) {
	u := localUploader(t)

	res, err := u.Upload(context.Background(), pngDataURI(t, 4, 4), "my photo!.png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if res.URL != "" {
		t.Errorf("local storage has no absolute url, got %q", res.URL)
	}
	if !strings.HasPrefix(res.Relative, "/uploads/work/") {
		t.Errorf("unexpected relative path %q", res.Relative)
	}
	if !strings.HasSuffix(res.Relative, ".webp") {
		t.Errorf("stored name must be webp, got %q", res.Relative)
	}
	// Unsafe characters are stripped from the original name.
	if strings.Contains(res.Relative, " ") || strings.Contains(res.Relative, "!") {
		t.Errorf("unsafe characters survived: %q", res.Relative)
	}

	name := filepath.Base(res.Relative)
	data, err := os.ReadFile(filepath.Join(u.localDir, "work", name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if _, err := webp.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("stored file is not valid webp: %v", err)
	}
}

func TestUploadDownscalesWideImages(t *testing.T) {
	u := localUploader(t)

	res, err := u.Upload(context.Background(), pngDataURI(t, 3200, 8), "wide.png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(u.localDir, "work", filepath.Base(res.Relative)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if img.Bounds().Dx() > maxWidth {
		t.Errorf("image not downscaled, width %d", img.Bounds().Dx())
	}
}

func TestUploadRejectsNonDataURI(t *testing.T) {
	u := localUploader(t)

	if _, err := u.Upload(context.Background(), "plainbase64==", "x.png"); err == nil {
		t.Fatal("expected error for missing data uri prefix")
	}
}

func TestUploadRejectsGarbageImage(t *testing.T) {
	u := localUploader(t)

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
	if _, err := u.Upload(context.Background(), uri, "x.png"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestUniqueNameFallback(t *testing.T) {
	name := uniqueName("!!!.png")
	if !strings.HasSuffix(name, "-image.webp") {
		t.Errorf("empty sanitized base falls back to image, got %q", name)
	}
}
