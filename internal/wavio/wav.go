package wavio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/oin/bounded-cast/pcm"
)

// ReadPCM decodes a WAV file into integer PCM at the file's bit depth.
// The decoder yields float32 samples; they are mapped back onto the
// integer domain through pcm.
func ReadPCM(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("invalid wav buffer: %s", path)
	}
	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = int(dec.BitDepth)
	}
	return pcm.ToInt(buf, bits)
}

// WritePCM encodes an integer PCM buffer to a WAV file at the buffer's
// bit depth. The encoder consumes float32 samples, so the buffer is
// mapped onto [-1, 1] first.
func WritePCM(path string, buf *audio.IntBuffer) error {
	fbuf, err := pcm.ToFloat32(buf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(fbuf); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
