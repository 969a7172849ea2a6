package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ZoomScale is the dolly factor applied per wheel notch.
	ZoomScale = 0.95
	// minPolar keeps the camera off the pole so the up vector stays valid.
	minPolar = 1e-6
)

type Limits struct {
	MinDistance   float64
	MaxDistance   float64
	MaxPolarAngle float64
}

// Orbit is a pointer driven camera circling a fixed target. Input moves the
// goal angles and radius, Update eases the current values toward them.
type Orbit struct {
	Target mgl64.Vec3
	Limits Limits

	theta, phi, radius          float64
	goalTheta, goalPhi, goalRad float64
	velTheta, velPhi, velRad    float64

	spring harmonica.Spring
}

type Options struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Limits Limits
	FPS    int
	// Damping in (0,1]; larger settles faster.
	Damping float64
}

func NewOrbit(opts Options) *Orbit {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	// A damping factor d per frame settles in roughly 1/d frames.
	frequency := 6.0
	if opts.Damping > 0 {
		frequency = opts.Damping * float64(fps) * 2
	}

	o := &Orbit{
		Target: opts.Target,
		Limits: opts.Limits,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, 1.0),
	}

	offset := opts.Eye.Sub(opts.Target)
	o.radius = offset.Len()
	if o.radius > 0 {
		o.phi = math.Acos(clamp(offset.Y()/o.radius, -1, 1))
	}
	o.theta = math.Atan2(offset.X(), offset.Z())

	o.radius = o.clampRadius(o.radius)
	o.phi = o.clampPolar(o.phi)
	o.goalTheta, o.goalPhi, o.goalRad = o.theta, o.phi, o.radius

	return o
}

// Rotate turns the goal orientation by a pointer drag of (dx, dy) pixels in a
// viewport viewportHeight pixels tall.
func (o *Orbit) Rotate(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float64(viewportHeight)
	o.goalTheta -= 2 * math.Pi * dx / h
	o.goalPhi = o.clampPolar(o.goalPhi - 2*math.Pi*dy/h)
}

// Zoom dollies by ZoomScale per wheel notch; positive wheel moves closer.
func (o *Orbit) Zoom(wheel float64) {
	if wheel == 0 {
		return
	}
	o.goalRad = o.clampRadius(o.goalRad * math.Pow(ZoomScale, wheel))
}

// Update advances the damping springs by one frame.
func (o *Orbit) Update() {
	o.theta, o.velTheta = o.spring.Update(o.theta, o.velTheta, o.goalTheta)
	o.phi, o.velPhi = o.spring.Update(o.phi, o.velPhi, o.goalPhi)
	o.radius, o.velRad = o.spring.Update(o.radius, o.velRad, o.goalRad)

	// Springs may overshoot; the limits hold for every rendered frame.
	o.phi = o.clampPolar(o.phi)
	o.radius = o.clampRadius(o.radius)
}

// Position returns the eye position.
func (o *Orbit) Position() mgl64.Vec3 {
	sinPhi := math.Sin(o.phi)
	return o.Target.Add(mgl64.Vec3{
		o.radius * sinPhi * math.Sin(o.theta),
		o.radius * math.Cos(o.phi),
		o.radius * sinPhi * math.Cos(o.theta),
	})
}

func (o *Orbit) Distance() float64 {
	return o.radius
}

func (o *Orbit) Polar() float64 {
	return o.phi
}

func (o *Orbit) Azimuth() float64 {
	return o.theta
}

func (o *Orbit) clampRadius(r float64) float64 {
	if o.Limits.MinDistance > 0 && r < o.Limits.MinDistance {
		r = o.Limits.MinDistance
	}
	if o.Limits.MaxDistance > 0 && r > o.Limits.MaxDistance {
		r = o.Limits.MaxDistance
	}
	return r
}

func (o *Orbit) clampPolar(phi float64) float64 {
	maxPolar := o.Limits.MaxPolarAngle
	if maxPolar <= 0 || maxPolar > math.Pi {
		maxPolar = math.Pi
	}
	return clamp(phi, minPolar, maxPolar-minPolar)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
