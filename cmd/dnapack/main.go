package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/dna-codec/nuc"
	"github.com/wippyai/dna-codec/packed"
)

func main() {
	var (
		seqText     = flag.String("seq", "", "Sequence text to pack (ACGT, case-insensitive)")
		inFile      = flag.String("in", "", "Read input from a file instead of -seq")
		outFile     = flag.String("out", "", "Write the packed frame to a file")
		unpack      = flag.Bool("unpack", false, "Treat -in as a packed frame and decode it")
		stat        = flag.Bool("stat", false, "Print length, packed size and per-base counts")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			packed.SetLogger(logger)
			defer logger.Sync() //nolint:errcheck
		}
	}

	if *seqText == "" && *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: dnapack -seq <text> [-out file] [-stat]")
		fmt.Fprintln(os.Stderr, "       dnapack -in <file> [-unpack] [-out file] [-stat]")
		fmt.Fprintln(os.Stderr, "       dnapack -seq <text> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*seqText, *inFile, *unpack); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*seqText, *inFile, *outFile, *unpack, *stat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(seqText, inFile, outFile string, unpack, stat bool) error {
	seq, err := load(seqText, inFile, unpack)
	if err != nil {
		return err
	}

	if stat {
		counts := make(map[nuc.Nuc]int)
		for _, base := range seq.All() {
			counts[base]++
		}
		fmt.Printf("Length: %d bases\n", seq.Len())
		fmt.Printf("Packed: %d bytes\n", seq.PackedSize())
		for _, base := range []nuc.Nuc{nuc.A, nuc.C, nuc.G, nuc.T} {
			fmt.Printf("  %s: %d\n", base, counts[base])
		}
	}

	if outFile != "" {
		data, err := seq.MarshalBinary()
		if err != nil {
			return fmt.Errorf("pack: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), outFile)
		return nil
	}

	if !stat {
		fmt.Println(seq.String())
	}
	return nil
}

// load builds the sequence from whichever input source was given.
func load(seqText, inFile string, unpack bool) (*packed.Sequence, error) {
	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if unpack {
			seq, err := packed.UnmarshalBinary(data)
			if err != nil {
				return nil, fmt.Errorf("unpack: %w", err)
			}
			return seq, nil
		}
		return parseText(string(data))
	}
	if unpack {
		return nil, fmt.Errorf("-unpack requires -in")
	}
	return parseText(seqText)
}

// parseText packs raw text. Whitespace is stripped so wrapped files work;
// the library itself stays strict.
func parseText(text string) (*packed.Sequence, error) {
	joined := strings.Join(strings.Fields(text), "")
	seq, err := packed.FromString(joined)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return seq, nil
}
