package sprites

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPaintEveryKind(t *testing.T) {
	for _, kind := range Kinds {
		img, err := Paint(kind)
		if err != nil {
			t.Fatalf("Paint(%s): %v", kind, err)
		}
		if img.Bounds().Empty() {
			t.Fatalf("Paint(%s) returned an empty image", kind)
		}
		if FileName(kind) == "" {
			t.Fatalf("no file name for %s", kind)
		}
	}

	if _, err := Paint("bicycle"); err == nil {
		t.Fatal("unknown kind painted")
	}
}

func TestTreeIsAnchoredAtBottomCentre(t *testing.T) {
	img := PaintTree()

	if _, _, _, a := img.At(TreeWidth/2, TreeHeight-1).RGBA(); a == 0 {
		t.Fatal("trunk missing at bottom centre")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatal("top-left corner should be transparent")
	}
}

func TestCarIsOpaqueInTheMiddle(t *testing.T) {
	img := PaintCar(PlayerBody)
	if got := img.RGBAAt(CarWidth/2, 12); got != PlayerBody {
		t.Fatalf("body colour = %v, want %v", got, PlayerBody)
	}
}

func TestBackgroundIsDeterministic(t *testing.T) {
	a := PaintBackground(5)
	b := PaintBackground(5)
	for y := 0; y < BackgroundHeight; y++ {
		for x := 0; x < BackgroundWidth; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) differs for the same seed", x, y)
			}
		}
	}
}

func TestSaveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(KindTree))
	img, err := Paint(KindTree)
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if err := Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if cfg.Width != TreeWidth || cfg.Height != TreeHeight {
		t.Fatalf("saved size = %dx%d, want %dx%d", cfg.Width, cfg.Height, TreeWidth, TreeHeight)
	}
}
