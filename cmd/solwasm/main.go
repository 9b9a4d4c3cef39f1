// Command solwasm is a small demo/integration surface for the wasmbe
// encoder. It is not a front-end: it never parses source text, only
// encodes the fixed sample module built by demoModule.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BTETON/solidity"
)

func main() {
	var (
		out         = flag.String("out", "", "Path to write the encoded demo module")
		interactive = flag.Bool("i", false, "Interactive section browser after encoding")
	)
	flag.Parse()

	if *out == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: solwasm -out <file.wasm>")
		fmt.Fprintln(os.Stderr, "       solwasm -out <file.wasm> -i  (interactive section browser)")
		os.Exit(1)
	}

	bin := wasmbe.Encode(demoModule())

	if *out != "" {
		if err := os.WriteFile(*out, bin, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", *out, len(bin))
	}

	if *interactive {
		if err := runInteractive(bin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
