package codec

// Little-endian byte packing for the compressed frame. The frame format is
// fixed at 2 bytes per id and 4 bytes per count; widening either would be
// a format version bump, not a bug fix.

func packU16(out []byte, v uint16) []byte {
	return append(out, byte(v), byte(v>>8))
}

func packU32(out []byte, v uint32) []byte {
	return append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// unpackU16 reads 2 bytes at off; the caller guarantees bounds.
func unpackU16(data []byte, off int) uint16 {
	return uint16(data[off]) | uint16(data[off+1])<<8
}

// unpackU32 reads 4 bytes at off; the caller guarantees bounds.
func unpackU32(data []byte, off int) uint32 {
	return uint32(data[off]) |
		uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16 |
		uint32(data[off+3])<<24
}
