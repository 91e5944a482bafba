package bisect

import (
	"flag"
	"io"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestParamsFlags(t *testing.T) {
	params := DefaultParams()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	params.AddFlags(fs)
	err := fs.Parse([]string{"-method", "Direction Offset", "-count", "3", "-start", "5,0,0",
		"-direction", "1, 0, 0", "-step", "-1"})
	if err != nil {
		t.Fatal(err)
	}
	planes, err := params.Planes()
	if err != nil {
		t.Fatal(err)
	}
	checkPlanes(t, planes, model3d.X(1), []model3d.Coord3D{
		model3d.X(5), model3d.X(4), model3d.X(3),
	})

	if err := fs.Parse([]string{"-start", "1,2"}); err == nil {
		t.Fatal("expected error for short coordinate")
	}
	if err := fs.Parse([]string{"-method", "spiral"}); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestParamsOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	DefaultParams().AddFlags(fs)
	if err := fs.Parse([]string{"-count", "7", "-end", "0.1,0.2,0.3"}); err != nil {
		t.Fatal(err)
	}

	preset := DefaultParams()
	preset.Method = MethodEndPoints
	preset.Count = 2
	preset.Start = model3d.XYZ(1, 1, 1)
	if err := preset.Override(fs); err != nil {
		t.Fatal(err)
	}
	if preset.Count != 7 || preset.End != model3d.XYZ(0.1, 0.2, 0.3) {
		t.Fatalf("flags were not applied: %+v", preset)
	}
	if preset.Start != model3d.XYZ(1, 1, 1) {
		t.Fatalf("unset flag overrode preset: %+v", preset)
	}
}
