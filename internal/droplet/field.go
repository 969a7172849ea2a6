package droplet

import "math/rand"

// New creates a field with opts.Count droplets scattered uniformly inside the
// spawn volume.
func New(opts Options) *Field {
	count := opts.Count
	if count < 0 {
		count = 0
	}

	float := rand.Float64
	if opts.Rand != nil {
		float = opts.Rand.Float64
	}

	f := &Field{droplets: make([]Droplet, count)}
	for i := range f.droplets {
		f.droplets[i].Position = Vec3{
			X: SpawnMin.X + float()*(SpawnMax.X-SpawnMin.X),
			Y: SpawnMax.Y - float()*(SpawnMax.Y-SpawnMin.Y),
			Z: SpawnMin.Z + float()*(SpawnMax.Z-SpawnMin.Z),
		}
	}

	return f
}

// FromPositions builds a field over explicit positions.
func FromPositions(positions ...Vec3) *Field {
	f := &Field{droplets: make([]Droplet, len(positions))}
	for i, p := range positions {
		f.droplets[i].Position = p
	}
	return f
}

// AdvanceFrame moves every droplet down by Step. A droplet that falls below
// Floor reappears at Ceiling in the same column. It returns how many wrapped.
func (f *Field) AdvanceFrame() int {
	wrapped := 0
	for i := range f.droplets {
		d := &f.droplets[i]
		d.Position.Y -= Step
		if d.Position.Y < Floor {
			d.Position.Y = Ceiling
			wrapped++
		}
	}
	return wrapped
}

// Update is the per-frame hook called by the render loop.
func (f *Field) Update() int {
	wrapped := f.AdvanceFrame()
	f.frames++
	f.wraps += uint64(wrapped)
	return wrapped
}

// Droplets returns the live buffer. Callers may read it between frames.
func (f *Field) Droplets() []Droplet {
	return f.droplets
}

func (f *Field) Len() int {
	return len(f.droplets)
}

// Stats reports frames advanced through Update and total wrap-arounds.
func (f *Field) Stats() (frames, wraps uint64) {
	return f.frames, f.wraps
}
