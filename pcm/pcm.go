// Package pcm converts audio buffers between integer PCM and
// floating-point samples by rescaling each sample between bounded
// domains. Integer PCM at B bits uses the symmetric signed domain
// [-(2^(B-1)-1), 2^(B-1)-1], the conventional full-scale mapping, so a
// full-scale sample lands exactly on ±1.
package pcm

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/oin/bounded-cast/domain"
)

func bitDomain(bits int) (domain.IntBits, error) {
	if bits < 2 || bits > 32 {
		return domain.IntBits{}, fmt.Errorf("unsupported bit depth %d", bits)
	}
	return domain.IntBits{Bits: uint(bits)}, nil
}

// ToFloat32 maps an integer PCM buffer onto [-1, 1] float32 samples.
// The source bit depth is taken from the buffer. The most negative
// two's-complement sample clamps to -1.
func ToFloat32(src *audio.IntBuffer) (*audio.Float32Buffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("nil source buffer")
	}
	from, err := bitDomain(src.SourceBitDepth)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(src.Data))
	for i, s := range src.Data {
		out[i] = domain.Convert(domain.Bipolar{}, int32(s), from)
	}
	return &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  src.Format.SampleRate,
			NumChannels: src.Format.NumChannels,
		},
		Data:           out,
		SourceBitDepth: src.SourceBitDepth,
	}, nil
}

// ToInt maps float32 samples in [-1, 1] onto integer PCM at the given
// bit depth. Samples outside [-1, 1] clamp to full scale.
func ToInt(src *audio.Float32Buffer, bits int) (*audio.IntBuffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("nil source buffer")
	}
	to, err := bitDomain(bits)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(src.Data))
	for i, s := range src.Data {
		out[i] = int(domain.Convert(to, s, domain.Bipolar{}))
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  src.Format.SampleRate,
			NumChannels: src.Format.NumChannels,
		},
		Data:           out,
		SourceBitDepth: bits,
	}, nil
}

// Requantize rescales an integer PCM buffer to a different bit depth
// using all-integer arithmetic. Requantizing to the source depth is a
// clamp-only pass-through.
func Requantize(src *audio.IntBuffer, bits int) (*audio.IntBuffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("nil source buffer")
	}
	from, err := bitDomain(src.SourceBitDepth)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	to, err := bitDomain(bits)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	out := make([]int, len(src.Data))
	for i, s := range src.Data {
		out[i] = int(domain.Convert(to, int32(s), from))
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  src.Format.SampleRate,
			NumChannels: src.Format.NumChannels,
		},
		Data:           out,
		SourceBitDepth: bits,
	}, nil
}
