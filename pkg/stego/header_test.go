package stego

import (
	"image"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 4)) // 64 pixels, well past HeaderPixels
	width := img.Bounds().Dx()

	seed := make([]byte, SeedLen)
	for i := range seed {
		seed[i] = byte(i * 17)
	}

	writeHeader(img, width, seed)
	declaredLen, got := readHeader(img, width)

	if declaredLen != SeedLen {
		t.Fatalf("declaredLen = %d, want %d", declaredLen, SeedLen)
	}
	if len(got) != SeedLen {
		t.Fatalf("seed length = %d, want %d", len(got), SeedLen)
	}
	for i := range seed {
		if got[i] != seed[i] {
			t.Fatalf("seed byte %d: got %#x, want %#x", i, got[i], seed[i])
		}
	}
}

func TestHeaderPixelsConstant(t *testing.T) {
	if HeaderBits != 136 {
		t.Fatalf("HeaderBits = %d, want 136", HeaderBits)
	}
	if HeaderPixels != 46 {
		t.Fatalf("HeaderPixels = %d, want 46", HeaderPixels)
	}
}

func TestHeaderLeavesOtherPixelsBitUntouched(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xfe // every channel's LSB starts at 0
	}

	writeHeader(img, 16, make([]byte, SeedLen))

	// A pixel well beyond the header should be untouched by writeHeader.
	off := img.PixOffset(15, 3)
	if img.Pix[off] != 0xfe {
		t.Errorf("pixel outside header range was modified: got %#x, want 0xfe", img.Pix[off])
	}
}
