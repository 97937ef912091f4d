package compress

// NoOpCodec passes blocks through untouched. Useful when the journal sits
// on an already-compressed filesystem, or to take compression out of the
// picture while debugging.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is; the result aliases data.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is; the result aliases data.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
