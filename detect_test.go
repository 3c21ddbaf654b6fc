package crossview

import "testing"

func TestClassifyNilLive(t *testing.T) {
	cached := Snapshot{Position: V3(1, 2, 3), Mode: ModeIntersection}
	if got := Classify(cached, nil); got != ChangeNone {
		t.Errorf("Classify(cached, nil) = %v, want None", got)
	}
}

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		name string
		from Vec3
		to   Vec3
		want Change
	}{
		{"identical", V3(1, 2, 3), V3(1, 2, 3), ChangeNone},
		{"sub-epsilon x", V3(0, 0, 0), V3(0.9e-12, 0, 0), ChangeNone},
		{"sub-epsilon all", V3(5, 5, 5), V3(5 + 0.5e-12, 5 - 0.5e-12, 5 + 0.9e-12), ChangeNone},
		{"epsilon x", V3(0, 0, 0), V3(1e-12, 0, 0), ChangeReposition},
		{"epsilon y", V3(0, 0, 0), V3(0, 1e-12, 0), ChangeReposition},
		{"epsilon z", V3(0, 0, 0), V3(0, 0, 1e-12), ChangeReposition},
		{"large move", V3(0, 0, 0), V3(10, 0, 0), ChangeReposition},
		{"negative move", V3(3, 3, 3), V3(3, -3, 3), ChangeReposition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			live := NewCrosshair()
			live.SetPosition(tt.to)
			cached := Snapshot{
				Position:  tt.from,
				Mode:      live.Mode(),
				Thickness: live.Thickness(),
			}
			if got := Classify(cached, live); got != tt.want {
				t.Errorf("Classify(%v -> %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestClassifyProperties(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		thickness Thickness
		move      Vec3
	}{
		{"mode change", ModeIntersection, ThicknessFine, V3(0, 0, 0)},
		{"thickness change", ModeBasic, ThicknessThick, V3(0, 0, 0)},
		{"mode change with move", ModeSmallBasic, ThicknessFine, V3(7, 7, 7)},
		{"both change", ModeNone, ThicknessMedium, V3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			live := NewCrosshair()
			live.SetMode(tt.mode)
			live.SetThickness(tt.thickness)
			live.SetPosition(tt.move)
			// Cache reflects the defaults: ModeBasic, Fine, origin.
			cached := Snapshot{Mode: ModeBasic, Thickness: ThicknessFine}
			if got := Classify(cached, live); got != ChangeRebuild {
				t.Errorf("Classify(%s) = %v, want Rebuild", tt.name, got)
			}
		})
	}
}

func TestClassifyDoesNotMutate(t *testing.T) {
	live := NewCrosshair()
	live.SetPosition(V3(4, 5, 6))
	before := live.Snapshot()
	cached := Snapshot{Position: V3(1, 2, 3), Mode: ModeNone}

	Classify(cached, live)

	if live.Snapshot() != before {
		t.Error("Classify mutated the live state")
	}
	if cached.Position != V3(1, 2, 3) || cached.Mode != ModeNone {
		t.Error("Classify mutated the cached snapshot")
	}
}
