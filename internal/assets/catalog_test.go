package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func waitSettled(t *testing.T, c *Catalog) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("catalog did not settle")
	}
}

func TestCatalogLoads(t *testing.T) {
	fsys := fstest.MapFS{
		"ground.png":     {Data: pngBytes(t)},
		"pipeTop.png":    {Data: []byte("not a png")},
		"background.png": {Data: pngBytes(t)},
	}
	c := NewCatalog(fsys, nil, Ground, PipeTop, PipeBottom, Background)

	if c.Settled() {
		t.Fatal("catalog settled before Load")
	}
	if c.Status(Ground) != StatusLoading {
		t.Errorf("Status(ground) = %v before Load", c.Status(Ground))
	}

	c.Load(context.Background())
	waitSettled(t, c)

	if !c.Settled() {
		t.Error("Settled() false after Done")
	}
	tests := map[string]Status{
		Ground:     StatusReady,
		Background: StatusReady,
		PipeTop:    StatusFailed,
		PipeBottom: StatusFailed,
	}
	for name, want := range tests {
		if got := c.Status(name); got != want {
			t.Errorf("Status(%s) = %v, want %v", name, got, want)
		}
	}

	img, ok := c.Image(Ground)
	if !ok || img.Bounds().Dx() != 4 {
		t.Errorf("Image(ground) = %v, %v", img, ok)
	}
	if _, ok := c.Image(PipeTop); ok {
		t.Error("failed asset returned an image")
	}
	if c.Err(PipeBottom) == nil {
		t.Error("missing file should record an error")
	}
	if settled, total := c.Progress(); settled != 4 || total != 4 {
		t.Errorf("Progress() = %d/%d", settled, total)
	}
}

func TestCatalogWithoutDirectory(t *testing.T) {
	c := NewCatalog(nil, nil, DefaultNames()...)
	c.Load(context.Background())
	waitSettled(t, c)

	for _, n := range DefaultNames() {
		if c.Status(n) != StatusFailed {
			t.Errorf("Status(%s) = %v, want failed", n, c.Status(n))
		}
	}
}

func TestCatalogCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCatalog(fstest.MapFS{"ground.png": {Data: pngBytes(t)}}, nil, Ground)
	c.Load(ctx)
	waitSettled(t, c)

	if c.Status(Ground) != StatusFailed {
		t.Errorf("Status(ground) = %v after cancel, want failed", c.Status(Ground))
	}
}

func TestUnknownAsset(t *testing.T) {
	c := NewCatalog(nil, nil)
	if c.Status("nope") != StatusFailed {
		t.Error("unknown asset should be failed")
	}
	if c.Err("nope") == nil {
		t.Error("unknown asset should report an error")
	}
	if !c.Settled() {
		t.Error("empty catalog is settled")
	}
}

func TestDefaultNames(t *testing.T) {
	names := DefaultNames()
	if len(names) != PlayerFrames+PlayerJumpFrames+4 {
		t.Fatalf("got %d names", len(names))
	}
	if names[0] != "player0" || names[PlayerFrames] != "playerJump0" {
		t.Errorf("unexpected order %v", names)
	}
}
