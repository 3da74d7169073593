// Package stego implements the steganographic codec: embedding an opaque
// byte payload into the least-significant bits of a lossless raster image,
// and recovering it again. Placement of payload bits among pixels is keyed
// by a randomly generated seed that travels with the image itself.
package stego
