package stego

import "image"

const (
	SeedLen      = 16                   // bytes
	HeaderBytes  = 1 + SeedLen          // len byte + seed
	HeaderBits   = HeaderBytes * 8      // 136
	HeaderPixels = (HeaderBits + 2) / 3 // ceil(136/3) = 46
)

func writeHeader(img *image.NRGBA, width int, seed []byte) {
	header := make([]byte, HeaderBytes)
	header[0] = SeedLen
	copy(header[1:], seed)

	bits := bytesToBits(header)
	writeBitsToPixels(img, width, 0, bits)
}

// readHeader always returns 16 seed bytes regardless of the declared
// length byte; callers warn, not fail, when that byte isn't 16.
func readHeader(img *image.NRGBA, width int) (declaredLen byte, seed []byte) {
	bits := readBitsFromPixels(img, width, 0, HeaderPixels)
	header := bitsToBytes(bits[:HeaderBits])
	return header[0], header[1:HeaderBytes]
}

func writeBitsToPixels(img *image.NRGBA, width int, startPixel int, bits []byte) {
	pixel := startPixel
	channel := 0
	for _, bit := range bits {
		x, y := pixel%width, pixel/width
		off := img.PixOffset(x, y)
		img.Pix[off+channel] = withLSB(img.Pix[off+channel], bit)
		channel++
		if channel == 3 {
			channel = 0
			pixel++
		}
	}
}

func readBitsFromPixels(img *image.NRGBA, width int, startPixel int, numPixels int) []byte {
	bits := make([]byte, 0, numPixels*3)
	for i := 0; i < numPixels; i++ {
		pixel := startPixel + i
		x, y := pixel%width, pixel/width
		off := img.PixOffset(x, y)
		bits = append(bits, channelLSB(img.Pix[off+0]), channelLSB(img.Pix[off+1]), channelLSB(img.Pix[off+2]))
	}
	return bits
}
