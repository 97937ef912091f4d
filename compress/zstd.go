package compress

// ZstdCodec compresses blocks with Zstandard. Preferred for archival
// journals where ratio matters more than append latency.
//
// Two implementations exist behind the zstdcgo build tag: the default pure
// Go one (klauspost/compress/zstd) and a cgo binding (valyala/gozstd) that
// trades build portability for the reference library's speed.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
