package droplet

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestNewCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"Empty", 0, 0},
		{"Default", DefaultCount, 20},
		{"Single", 1, 1},
		{"Negative is empty", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(Options{Count: tt.count})
			if f.Len() != tt.want {
				t.Errorf("Expected %d droplets, got %d", tt.want, f.Len())
			}
		})
	}
}

func TestNewSpawnVolume(t *testing.T) {
	f := New(Options{Count: DefaultCount, Rand: rand.New(rand.NewSource(7))})
	for i, d := range f.Droplets() {
		p := d.Position
		if p.X < -3 || p.X > 3 {
			t.Errorf("droplet %d: x=%f outside [-3,3]", i, p.X)
		}
		if p.Y < -2.5 || p.Y > -0.5 {
			t.Errorf("droplet %d: y=%f outside [-2.5,-0.5]", i, p.Y)
		}
		if p.Z < -1 || p.Z > 1 {
			t.Errorf("droplet %d: z=%f outside [-1,1]", i, p.Z)
		}
	}
}

func TestNewSeededIsReproducible(t *testing.T) {
	a := New(Options{Count: DefaultCount, Rand: rand.New(rand.NewSource(42))})
	b := New(Options{Count: DefaultCount, Rand: rand.New(rand.NewSource(42))})

	for i := range a.Droplets() {
		if a.Droplets()[i] != b.Droplets()[i] {
			t.Fatalf("droplet %d differs: %+v vs %+v", i, a.Droplets()[i], b.Droplets()[i])
		}
	}
}

func TestAdvanceFrameEmpty(t *testing.T) {
	f := New(Options{Count: 0})
	for i := 0; i < 10; i++ {
		if wrapped := f.AdvanceFrame(); wrapped != 0 {
			t.Errorf("Expected no wraps on empty field, got %d", wrapped)
		}
	}
	if f.Len() != 0 {
		t.Errorf("Expected empty field, got %d droplets", f.Len())
	}
}

func TestAdvanceFrameLinearFall(t *testing.T) {
	tests := []struct {
		name   string
		y0     float64
		frames int
	}{
		{"From ceiling", -0.5, 50},
		{"Mid column", -1.7, 30},
		{"Just above floor", -2.9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromPositions(Vec3{X: 1, Y: tt.y0, Z: 0.5})
			for i := 0; i < tt.frames; i++ {
				f.AdvanceFrame()
			}
			want := tt.y0 - Step*float64(tt.frames)
			got := f.Droplets()[0].Position.Y
			if math.Abs(got-want) > epsilon {
				t.Errorf("Expected y=%f, got %f", want, got)
			}
		})
	}
}

func TestAdvanceFrameWrapsToCeiling(t *testing.T) {
	f := FromPositions(Vec3{X: 2, Y: -2.99, Z: -0.3})
	if wrapped := f.AdvanceFrame(); wrapped != 1 {
		t.Fatalf("Expected 1 wrap, got %d", wrapped)
	}
	p := f.Droplets()[0].Position
	if p.Y != Ceiling {
		t.Errorf("Expected y reset to %f, got %f", Ceiling, p.Y)
	}
	if p.X != 2 || p.Z != -0.3 {
		t.Errorf("Expected column (2,-0.3) kept, got (%f,%f)", p.X, p.Z)
	}
}

func TestAdvanceFrameInvariants(t *testing.T) {
	f := New(Options{Count: DefaultCount, Rand: rand.New(rand.NewSource(3))})

	columns := make([][2]float64, f.Len())
	for i, d := range f.Droplets() {
		columns[i] = [2]float64{d.Position.X, d.Position.Z}
	}

	for frame := 0; frame < 1000; frame++ {
		f.AdvanceFrame()
		for i, d := range f.Droplets() {
			if d.Position.Y < Floor || d.Position.Y > Ceiling {
				t.Fatalf("frame %d droplet %d: y=%f outside [%f,%f]", frame, i, d.Position.Y, Floor, Ceiling)
			}
			if d.Position.X != columns[i][0] || d.Position.Z != columns[i][1] {
				t.Fatalf("frame %d droplet %d: column moved", frame, i)
			}
		}
	}
}

func TestUpdateSingleWrapOver150Frames(t *testing.T) {
	f := FromPositions(Vec3{X: 0, Y: Ceiling, Z: 0})

	wraps := 0
	for i := 0; i < 150; i++ {
		wraps += f.Update()
	}

	if wraps != 1 {
		t.Errorf("Expected exactly one wrap in 150 frames, got %d", wraps)
	}

	frames, total := f.Stats()
	if frames != 150 {
		t.Errorf("Expected 150 frames counted, got %d", frames)
	}
	if total != 1 {
		t.Errorf("Expected 1 wrap counted, got %d", total)
	}
}
