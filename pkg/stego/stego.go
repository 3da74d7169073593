package stego

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Delimiter marks the end of the payload bitstream. Archive blobs never
// contain this literal, so it's a safe sentinel.
const Delimiter = "==STEGAPP_EOF=="

type RandomSource interface {
	RandomBytes(n int) []byte
}

// Embed hides payload inside the carrier image at inPath, writing the
// result to outPath. outPath's extension must be a lossless format.
func Embed(inPath string, payload []byte, outPath string, rng RandomSource) error {
	if _, err := formatFromPath(outPath); err != nil {
		return err
	}

	img, err := loadImage(inPath)
	if err != nil {
		return err
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	totalPixels := width * height

	if totalPixels < HeaderPixels {
		return fmt.Errorf("%w: image has %d pixels, need at least %d", ErrImageTooSmall, totalPixels, HeaderPixels)
	}

	withDelimiter := append(append([]byte(nil), payload...), []byte(Delimiter)...)
	bits := bytesToBits(withDelimiter)
	numPixelsNeeded := pixelsNeeded(len(bits))

	if HeaderPixels+numPixelsNeeded > totalPixels {
		return fmt.Errorf("%w: need %d pixels (%d header + %d payload), image has %d",
			ErrCapacityExceeded, HeaderPixels+numPixelsNeeded, HeaderPixels, numPixelsNeeded, totalPixels)
	}

	seed := rng.RandomBytes(SeedLen)
	writeHeader(img, width, seed)

	seedInt := binary.BigEndian.Uint64(seed[:8])
	pool := make([]int, 0, totalPixels-HeaderPixels)
	for i := HeaderPixels; i < totalPixels; i++ {
		pool = append(pool, i)
	}
	seq := sampleWithoutReplacement(pool, numPixelsNeeded, seedInt)

	bar := progressbar.NewOptions(len(seq),
		progressbar.OptionSetDescription(" embedding"),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
	)

	bitIdx := 0
	for _, flat := range seq {
		x, y := flat%width, flat/width
		off := img.PixOffset(x, y)
		for channel := 0; channel < 3 && bitIdx < len(bits); channel++ {
			img.Pix[off+channel] = withLSB(img.Pix[off+channel], bits[bitIdx])
			bitIdx++
		}
		bar.Add(1)
	}

	log.Info().Int("payload_bytes", len(payload)).Int("pixels_used", HeaderPixels+numPixelsNeeded).Msg("embedded payload")
	return saveImage(img, outPath)
}

func Extract(inPath string) ([]byte, error) {
	img, err := loadImage(inPath)
	if err != nil {
		return nil, err
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	totalPixels := width * height

	if totalPixels < HeaderPixels {
		return nil, fmt.Errorf("%w: image has %d pixels, need at least %d", ErrImageTooSmall, totalPixels, HeaderPixels)
	}

	declaredLen, seed := readHeader(img, width)
	if declaredLen != SeedLen {
		log.Warn().Int("declared_len", int(declaredLen)).Msg("seed header declares a non-standard seed length; reading 16 bytes anyway")
	}

	seedInt := binary.BigEndian.Uint64(seed[:8])
	pool := make([]int, 0, totalPixels-HeaderPixels)
	for i := HeaderPixels; i < totalPixels; i++ {
		pool = append(pool, i)
	}
	seq := sampleWithoutReplacement(pool, len(pool), seedInt)

	delim := delimiterBits()
	window := newBitWindow(len(delim) + 24) // 120 delimiter bits + 24 bits of slack = 144

	var bits []byte
	found := false

	for _, flat := range seq {
		x, y := flat%width, flat/width
		off := img.PixOffset(x, y)
		pixelBits := []byte{channelLSB(img.Pix[off+0]), channelLSB(img.Pix[off+1]), channelLSB(img.Pix[off+2])}
		bits = append(bits, pixelBits...)
		window.push(pixelBits...)

		if window.len() >= len(delim) {
			if o := window.indexOf(delim); o != -1 {
				start := len(bits) - window.len() + o
				bits = bits[:start]
				found = true
				break
			}
		}
	}

	if !found {
		if len(bits) >= len(delim) && bitsEqual(bits[len(bits)-len(delim):], delim) {
			bits = bits[:len(bits)-len(delim)]
			found = true
		}
	}
	if !found {
		return nil, ErrDelimiterNotFound
	}
	if len(bits)%8 != 0 {
		return nil, ErrCorruptStream
	}

	payload := bitsToBytes(bits)
	log.Info().Int("payload_bytes", len(payload)).Msg("extracted payload")
	return payload, nil
}

// ReadPayload is an alias for Extract.
func ReadPayload(inPath string) ([]byte, error) {
	return Extract(inPath)
}

func bitsEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
