package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/multi-bisect/bisect"
)

func main() {
	params := bisect.DefaultParams()
	var paramsPath string
	var outputPath string
	params.AddFlags(flag.CommandLine)
	flag.StringVar(&paramsPath, "params", "", "YAML parameter file (explicit flags take precedence)")
	flag.StringVar(&outputPath, "output", "", "path to save the binary plane sequence")
	flag.Parse()

	if len(flag.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: plane_sequence [flags]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if paramsPath != "" {
		preset, err := bisect.LoadParams(paramsPath)
		essentials.Must(err)
		essentials.Must(preset.Override(flag.CommandLine))
		params = preset
	}

	planes, err := params.Planes()
	essentials.Must(err)
	for i, p := range planes {
		fmt.Printf("plane %d: origin=%v normal=%v\n", i, p.Origin, p.Normal)
	}

	if outputPath != "" {
		log.Println("Saving planes...")
		essentials.Must(bisect.Save(outputPath, planes, bisect.WritePlanes))
	}
}
