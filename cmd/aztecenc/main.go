// Command aztecenc encodes text or binary payloads into an Aztec Code
// symbol and writes it out as a P4 (binary) portable bitmap.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/halfdan/aztec"
)

func main() {
	ecPercent := pflag.Int("ec-percent", 23, "requested error-correction percentage")
	compact := pflag.Bool("compact", false, "prefer a compact symbol when one fits")
	msbFirst := pflag.Bool("msb-first", false, "pack the symbol's row bytes MSB-first instead of LSB-first (the PBM output is MSB-first either way)")
	out := pflag.StringP("out", "o", "", "output PBM path (default: stdout)")
	configPath := pflag.String("config", "", "optional YAML defaults file")
	userLayers := pflag.Int("user-layers", 0, "pin the layer count (positive=full, negative=compact, 0=auto)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aztecenc [flags] [text]\n\n")
		fmt.Fprintf(os.Stderr, "Encode text (argv, or stdin if no argv given) into an Aztec Code\nsymbol, written as a P4 portable bitmap.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *configPath != "" {
		defaults, err := loadFileDefaults(*configPath)
		if err != nil {
			log.Fatalf("aztecenc: reading config %s: %v", *configPath, err)
		}
		applyFileDefaults(defaults, ecPercent, compact, msbFirst)
	}

	payload, err := readPayload(pflag.Args())
	if err != nil {
		log.Fatalf("aztecenc: reading payload: %v", err)
	}

	opts := aztec.DefaultOptions()
	opts.ErrorCorrectionPercentage = *ecPercent
	opts.PreferCompact = *compact
	opts.ExportMSBFirst = *msbFirst
	if *userLayers != 0 {
		opts = opts.WithUserLayers(*userLayers)
	}

	sym, cfg, err := aztec.EncodeWithDetails(payload, &opts)
	if err != nil {
		log.Fatalf("aztecenc: encode: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("aztecenc: creating %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := writePBM(w, sym); err != nil {
		log.Fatalf("aztecenc: writing bitmap: %v", err)
	}

	family := "full"
	if cfg.Compact {
		family = "compact"
	}
	fmt.Fprintf(os.Stderr, "aztecenc: %s L%d, %d data + %d parity codewords, %dx%d modules\n",
		family, cfg.Layers, cfg.DataCodewords, cfg.ParityCodewords, sym.Size, sym.Size)
}

// applyFileDefaults fills in flag values the user did not set explicitly on
// the command line from a YAML defaults file; explicit flags always win.
func applyFileDefaults(d *fileDefaults, ecPercent *int, compact, msbFirst *bool) {
	if d.ECPercent != nil && !pflag.CommandLine.Changed("ec-percent") {
		*ecPercent = *d.ECPercent
	}
	if d.PreferCompact != nil && !pflag.CommandLine.Changed("compact") {
		*compact = *d.PreferCompact
	}
	if d.MSBFirst != nil && !pflag.CommandLine.Changed("msb-first") {
		*msbFirst = *d.MSBFirst
	}
}

// readPayload returns the concatenated argv words (space-joined) if any
// were given, or the full contents of stdin otherwise.
func readPayload(args []string) ([]byte, error) {
	if len(args) > 0 {
		text := args[0]
		for _, a := range args[1:] {
			text += " " + a
		}
		return []byte(text), nil
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// writePBM writes sym as a binary (P4) portable bitmap: the text header
// "P4\n<width> <height>\n" followed by MSB-first row-packed bits - the same
// byte contract the symbol's ExportMSBFirst option produces, so a
// true symbol is written out unchanged, byte for byte.
func writePBM(w io.Writer, sym *aztec.Symbol) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", sym.Size, sym.Size); err != nil {
		return err
	}
	rowStride := (sym.Size + 7) / 8
	row := make([]byte, rowStride)
	for y := 0; y < sym.Size; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < sym.Size; x++ {
			if sym.Get(x, y) {
				row[x/8] |= 1 << uint(7-x%8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
