package compress

import "github.com/sakamoro/alicetxt/format"

// CompressionForLevel maps a user-facing effort knob onto the concrete codec
// a container is written with (spec §4.4, §6 --level).
func CompressionForLevel(level format.Level) format.CompressionType {
	switch level {
	case format.LevelFast:
		return format.CompressionLZ4
	case format.LevelBest:
		return format.CompressionZstd
	default:
		return format.CompressionS2
	}
}

// CodecForLevel resolves level directly to a ready-to-use Codec.
func CodecForLevel(level format.Level) (Codec, error) {
	return GetCodec(CompressionForLevel(level))
}
