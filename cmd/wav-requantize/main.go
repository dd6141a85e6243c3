package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oin/bounded-cast/internal/wavio"
	"github.com/oin/bounded-cast/pcm"
)

func main() {
	input := flag.String("input", "", "Input WAV file path")
	output := flag.String("output", "output.wav", "Output WAV file path")
	bits := flag.Int("bits", 16, "Target bit depth (2-32)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: wav-requantize -input in.wav -output out.wav -bits 8")
		os.Exit(1)
	}

	buf, err := wavio.ReadPCM(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	frames := len(buf.Data) / buf.Format.NumChannels
	fmt.Printf("Requantizing %s: %d frames, %d channels, %d-bit -> %d-bit...\n",
		*input, frames, buf.Format.NumChannels, buf.SourceBitDepth, *bits)

	out, err := pcm.Requantize(buf, *bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error requantizing: %v\n", err)
		os.Exit(1)
	}

	if err := wavio.WritePCM(*output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %s (%d frames)\n", *output, frames)
}
