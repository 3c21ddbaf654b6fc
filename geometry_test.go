package crossview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMeshSegmentCounts(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want int
	}{
		{"none", ModeNone, 0},
		{"basic", ModeBasic, 4},
		{"intersection", ModeIntersection, 2},
		{"small basic", ModeSmallBasic, 4},
		{"small intersection", ModeSmallIntersection, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := BuildMesh(tt.mode, ThicknessFine, 256, 256)
			if got := len(mesh.Segments); got != tt.want {
				t.Errorf("BuildMesh(%v) segment count = %d, want %d", tt.mode, got, tt.want)
			}
		})
	}
}

func TestBuildMeshBasicGeometry(t *testing.T) {
	mesh := BuildMesh(ModeBasic, ThicknessFine, 512, 512)

	want := []Segment{
		{Pt(0, -512), Pt(0, -5)},
		{Pt(0, 5), Pt(0, 512)},
		{Pt(-512, 0), Pt(-5, 0)},
		{Pt(5, 0), Pt(512, 0)},
	}
	if diff := cmp.Diff(want, mesh.Segments); diff != "" {
		t.Errorf("BuildMesh(Basic, 512x512) segments mismatch (-want +got):\n%s", diff)
	}
	if mesh.Width != 1 {
		t.Errorf("Width = %d, want 1", mesh.Width)
	}
	if !mesh.Visible {
		t.Error("Visible = false, want true")
	}
}

func TestBuildMeshIntersectionGeometry(t *testing.T) {
	mesh := BuildMesh(ModeIntersection, ThicknessMedium, 300, 200)

	want := []Segment{
		{Pt(-300, 0), Pt(300, 0)},
		{Pt(0, -200), Pt(0, 200)},
	}
	if diff := cmp.Diff(want, mesh.Segments); diff != "" {
		t.Errorf("BuildMesh(Intersection, 300x200) segments mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMeshSmallModesIgnoreTileSize(t *testing.T) {
	// Small variants only use the fixed 5px gap and 10px arm; tile size
	// must not leak into the geometry.
	for _, size := range []int{64, 512, 4096} {
		small := BuildMesh(ModeSmallBasic, ThicknessFine, size, size)
		want := []Segment{
			{Pt(0, -10), Pt(0, -5)},
			{Pt(0, 5), Pt(0, 10)},
			{Pt(-10, 0), Pt(-5, 0)},
			{Pt(5, 0), Pt(10, 0)},
		}
		if diff := cmp.Diff(want, small.Segments); diff != "" {
			t.Errorf("BuildMesh(SmallBasic, %d) segments mismatch (-want +got):\n%s", size, diff)
		}

		cross := BuildMesh(ModeSmallIntersection, ThicknessFine, size, size)
		wantCross := []Segment{
			{Pt(0, -10), Pt(0, 10)},
			{Pt(-10, 0), Pt(10, 0)},
		}
		if diff := cmp.Diff(wantCross, cross.Segments); diff != "" {
			t.Errorf("BuildMesh(SmallIntersection, %d) segments mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestBuildMeshVisibility(t *testing.T) {
	for mode := ModeNone; mode <= ModeSmallIntersection; mode++ {
		mesh := BuildMesh(mode, ThicknessThick, 100, 100)
		want := mode != ModeNone
		if mesh.Visible != want {
			t.Errorf("BuildMesh(%v).Visible = %v, want %v", mode, mesh.Visible, want)
		}
	}
}

func TestBuildMeshDeterministic(t *testing.T) {
	for mode := ModeNone; mode <= ModeSmallIntersection; mode++ {
		for _, th := range []Thickness{ThicknessFine, ThicknessMedium, ThicknessThick} {
			a := BuildMesh(mode, th, 640, 480)
			b := BuildMesh(mode, th, 640, 480)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("BuildMesh(%v, %v) not deterministic (-first +second):\n%s", mode, th, diff)
			}
		}
	}
}

func TestThicknessLineWidth(t *testing.T) {
	// The full contract: exactly Fine 1, Medium 3, Thick 5.
	want := map[Thickness]int{
		ThicknessFine:   1,
		ThicknessMedium: 3,
		ThicknessThick:  5,
	}
	for th, w := range want {
		if got := th.LineWidth(); got != w {
			t.Errorf("%v.LineWidth() = %d, want %d", th, got, w)
		}
	}
	for th, w := range want {
		mesh := BuildMesh(ModeBasic, th, 10, 10)
		if mesh.Width != w {
			t.Errorf("BuildMesh(Basic, %v).Width = %d, want %d", th, mesh.Width, w)
		}
	}
}
