// Command penumbrac is the penumbra shader compiler CLI.
//
// Usage:
//
//	penumbrac [options] <input>
//
// Examples:
//
//	penumbrac shader.psl                      # Compile vertex stage to stdout
//	penumbrac -stage fragment shader.psl      # Compile fragment stage
//	penumbrac -o shader.vert shader.psl       # Compile to file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gerred/penumbra"
)

var (
	output     = flag.String("o", "", "output file (default: stdout)")
	stage      = flag.String("stage", "vertex", "shader stage: vertex or fragment")
	extensions = flag.String("ext", "", "extension text prepended to the output")
	version    = flag.Bool("version", false, "print version")
)

const penumbraVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("penumbrac version %s\n", penumbraVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	// Read input file
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	// Parse top-level forms and split off the declaration section
	forms, err := penumbra.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(1)
	}
	decls, body := penumbra.SplitDeclarations(forms)

	opts := penumbra.DefaultOptions()
	opts.Extensions = *extensions

	var glslSource string
	switch *stage {
	case "vertex":
		glslSource, err = penumbra.CompileVertexSource(decls, body, opts)
	case "fragment":
		glslSource, err = penumbra.CompileFragmentSource(decls, body, opts)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q (want vertex or fragment)\n", *stage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(1)
	}

	// Write output
	if *output != "" {
		err = os.WriteFile(*output, []byte(glslSource), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", inputPath, *output, len(glslSource))
	} else {
		_, err = os.Stdout.WriteString(glslSource)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: penumbrac [options] <input.psl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  penumbrac shader.psl                  Compile vertex stage to stdout\n")
	fmt.Fprintf(os.Stderr, "  penumbrac -stage fragment shader.psl  Compile fragment stage\n")
	fmt.Fprintf(os.Stderr, "  penumbrac -o out.vert shader.psl      Compile to file\n")
}
