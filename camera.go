package boxgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// polarLimit keeps the orbiting eye off the poles, where look-at degenerates.
const polarLimit = 0.01

type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	Fovy   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64

	MinDistance float64
	MaxDistance float64
}

func NewCamera(cfg CameraConfig, aspect float64) *Camera {
	return &Camera{
		Position:    mgl64.Vec3(cfg.Position),
		Target:      mgl64.Vec3(cfg.Target),
		Up:          mgl64.Vec3{0, 1, 0},
		Fovy:        cfg.Fovy,
		Aspect:      aspect,
		Near:        cfg.Near,
		Far:         cfg.Far,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
	}
}

func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 && !math.IsInf(aspect, 0) {
		c.Aspect = aspect
	}
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

func (c *Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// Orbit swings the eye around the target, keeping its distance.
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	offset := c.Position.Sub(c.Target)
	r := offset.Len()
	if r == 0 {
		return
	}

	azimuth := math.Atan2(offset[0], offset[2])
	polar := math.Acos(mgl64.Clamp(offset[1]/r, -1, 1))

	azimuth += dAzimuth
	polar = mgl64.Clamp(polar+dPolar, polarLimit, math.Pi-polarLimit)

	c.Position = c.Target.Add(mgl64.Vec3{
		r * math.Sin(polar) * math.Sin(azimuth),
		r * math.Cos(polar),
		r * math.Sin(polar) * math.Cos(azimuth),
	})
}

// Zoom scales the eye distance by factor, within the configured limits.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	offset := c.Position.Sub(c.Target)
	r := offset.Len()
	if r == 0 {
		return
	}

	nr := r * factor
	if c.MinDistance > 0 && nr < c.MinDistance {
		nr = c.MinDistance
	}
	if c.MaxDistance > 0 && nr > c.MaxDistance {
		nr = c.MaxDistance
	}
	c.Position = c.Target.Add(offset.Mul(nr / r))
}

// Ray returns the ray from the eye through the normalized device coordinate
// x, y.
func (c *Camera) Ray(x, y float64) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	far := inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	if far[3] != 0 {
		far = far.Mul(1 / far[3])
	}

	dir := far.Vec3().Sub(c.Position)
	if dir.Len() == 0 {
		dir = c.Target.Sub(c.Position)
	}
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}
