package main

import (
	"context"
	"encoding/csv"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "map.png")
	trail := filepath.Join(dir, "trail.csv")
	args := []string{
		"-width", "32", "-depth", "24", "-generator", "value",
		"-droplets", "50", "-batch", "20", "-lifetime", "10",
		"-out", out, "-scale", "2", "-trail", trail,
	}
	if err := run(context.Background(), args); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("png is %v, want 64x48", b)
	}

	tf, err := os.Open(trail)
	if err != nil {
		t.Fatalf("open trail: %v", err)
	}
	defer tf.Close()
	rows, err := csv.NewReader(tf).ReadAll()
	if err != nil {
		t.Fatalf("read trail: %v", err)
	}
	if len(rows) < 51 {
		t.Errorf("expected at least one trail point per droplet, got %d rows", len(rows)-1)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if err := run(context.Background(), []string{"-generator", "nope", "-out", ""}); err == nil {
		t.Errorf("expected an error for an unknown generator")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	args := []string{"-width", "16", "-depth", "16", "-droplets", "10", "-out", ""}
	if err := run(ctx, args); err == nil {
		t.Errorf("expected cancellation error")
	}
}
