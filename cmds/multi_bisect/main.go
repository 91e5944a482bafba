package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/multi-bisect/bisect"
	"github.com/unixpickle/multi-bisect/polymesh"
)

func main() {
	params := bisect.DefaultParams()
	var paramsPath string
	var planesPath string
	var selectMin string
	var selectMax string
	var selectedPath string
	var verbose bool
	params.AddFlags(flag.CommandLine)
	flag.StringVar(&paramsPath, "params", "", "YAML parameter file (explicit flags take precedence)")
	flag.StringVar(&planesPath, "planes", "", "binary plane sequence to use instead of parameters")
	flag.StringVar(&selectMin, "select-min", "", "minimum x,y,z of face centers to cut")
	flag.StringVar(&selectMax, "select-max", "", "maximum x,y,z of face centers to cut")
	flag.StringVar(&selectedPath, "selected-output", "", "path to save the selected faces")
	flag.BoolVar(&verbose, "verbose", false, "log every cut")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: multi_bisect [flags] <input.stl> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	if paramsPath != "" {
		preset, err := bisect.LoadParams(paramsPath)
		essentials.Must(err)
		essentials.Must(preset.Override(flag.CommandLine))
		params = preset
	}

	var planes []bisect.Plane
	var err error
	if planesPath != "" {
		planes, err = bisect.Load(planesPath, bisect.ReadPlanes)
	} else {
		planes, err = params.Planes()
	}
	essentials.Must(err)

	log.Println("Loading mesh...")
	tris, err := bisect.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh, skipped := polymesh.FromModel3D(model3d.NewMeshTriangles(tris))
	log.Printf(" - %d vertices, %d faces", mesh.NumVertices(), mesh.NumFaces())
	if skipped > 0 {
		log.Printf(" - skipped %d degenerate triangles", skipped)
	}

	log.Println("Selecting faces...")
	if selectMin == "" && selectMax == "" {
		mesh.SelectAllFaces()
	} else {
		min, max := selectionBounds(selectMin, selectMax)
		mesh.SelectFaces(func(coords []model3d.Coord3D) bool {
			var center model3d.Coord3D
			for _, c := range coords {
				center = center.Add(c)
			}
			center = center.Scale(1 / float64(len(coords)))
			return center.X >= min.X && center.Y >= min.Y && center.Z >= min.Z &&
				center.X <= max.X && center.Y <= max.Y && center.Z <= max.Z
		})
	}
	log.Printf(" - selected %d faces", mesh.NumSelected(polymesh.FaceKind))

	log.Printf("Cutting with %d planes...", len(planes))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	b := &bisect.Bisector[polymesh.Element]{Verbose: verbose}
	res, err := b.Bisect(ctx, mesh, planes)
	if res != nil {
		log.Printf(" - applied %d cuts (%d empty), selected %d elements", res.Cuts,
			res.EmptyCuts, len(res.Selected))
	}
	if err != nil {
		log.Printf("Cutting stopped early: %v", err)
	}
	log.Printf(" - now %d vertices, %d faces", mesh.NumVertices(), mesh.NumFaces())

	log.Println("Saving output...")
	essentials.Must(mesh.Model3D().SaveGroupedSTL(outputPath))
	if selectedPath != "" {
		essentials.Must(mesh.SelectedModel3D().SaveGroupedSTL(selectedPath))
	}
	if err != nil {
		os.Exit(1)
	}
}

func selectionBounds(minStr, maxStr string) (min, max model3d.Coord3D) {
	inf := 1e300
	min = model3d.XYZ(-inf, -inf, -inf)
	max = model3d.XYZ(inf, inf, inf)
	var err error
	if minStr != "" {
		min, err = bisect.ParseCoord(minStr)
		essentials.Must(err)
	}
	if maxStr != "" {
		max, err = bisect.ParseCoord(maxStr)
		essentials.Must(err)
	}
	return
}
