package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumengallery/lumen-api/internal/pkg/imaging"
	"github.com/lumengallery/lumen-api/internal/pkg/storage"
)

func writeTestJPEG(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(store, imaging.NewDownscaler(2000)), dir
}

func TestServeAsset(t *testing.T) {
	h, dir := newTestHandler(t)
	writeTestJPEG(t, filepath.Join(dir, "travel-01.jpg"), 120, 80)

	req := httptest.NewRequest(http.MethodGet, "/travel-01.jpg", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("content type = %q, want image/jpeg", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Fatalf("cache control = %q", cc)
	}

	got, _, err := image.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a decodable image: %v", err)
	}
	if got.Bounds().Dx() != 120 {
		t.Fatalf("width = %d, want original 120", got.Bounds().Dx())
	}
}

func TestServeAssetWidthHint(t *testing.T) {
	h, dir := newTestHandler(t)
	writeTestJPEG(t, filepath.Join(dir, "street-01.jpg"), 400, 200)

	req := httptest.NewRequest(http.MethodGet, "/street-01.jpg?w=100", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got, _, err := image.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 100 {
		t.Fatalf("width = %d, want resized 100", got.Bounds().Dx())
	}
	if got.Bounds().Dy() != 50 {
		t.Fatalf("height = %d, want aspect-preserving 50", got.Bounds().Dy())
	}
}

func TestServeAssetInvalidWidth(t *testing.T) {
	h, dir := newTestHandler(t)
	writeTestJPEG(t, filepath.Join(dir, "moments-01.jpg"), 40, 40)

	req := httptest.NewRequest(http.MethodGet, "/moments-01.jpg?w=abc", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestServeAssetNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/missing.jpg", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestServeAssetNonImagePassthrough(t *testing.T) {
	h, dir := newTestHandler(t)
	content := []byte("not an image at all")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/notes.txt", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 passthrough", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), content) {
		t.Fatal("passthrough must hand the stored bytes through untouched")
	}
}
