// Package core provides fundamental types and utilities for the asteroids game.
// It contains no Bubble Tea or Ebitengine imports so that game logic stays
// pure and testable against any host.
package core

import "math"

// Vec2 is a 2D point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Neg returns the vector pointing the opposite way.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the magnitude of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Shape is an outline in an entity's local frame, centered at the origin.
// Each point carries an implicit homogeneous coordinate of 1.
type Shape []Vec2

// Matrix3 is a 3x3 matrix acting on homogeneous 2D points (column vectors).
type Matrix3 [3][3]float64

// RotationMatrix builds the homogeneous rotation for the given angle in degrees.
func RotationMatrix(angleDegrees float64) Matrix3 {
	theta := angleDegrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// TranslationMatrix builds the homogeneous translation by offset.
func TranslationMatrix(offset Vec2) Matrix3 {
	return Matrix3{
		{1, 0, offset.X},
		{0, 1, offset.Y},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// Apply multiplies the homogeneous point (p.X, p.Y, 1) by m and
// returns the resulting (x, y).
func (m Matrix3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// ToWorld rotates every local point by angleDegrees and then translates it
// by position. Point order is preserved.
func ToWorld(shape Shape, angleDegrees float64, position Vec2) []Vec2 {
	m := TranslationMatrix(position).Mul(RotationMatrix(angleDegrees))
	out := make([]Vec2, len(shape))
	for i, p := range shape {
		out[i] = m.Apply(p)
	}
	return out
}

// Translate moves every local point by position without any rotation.
func Translate(shape Shape, position Vec2) []Vec2 {
	m := TranslationMatrix(position)
	out := make([]Vec2, len(shape))
	for i, p := range shape {
		out[i] = m.Apply(p)
	}
	return out
}

// WrapF maps v into [0, size) using floored modulo.
func WrapF(v, size float64) float64 {
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// -tiny + size can round up to size itself.
	if r >= size {
		r = 0
	}
	return r
}

// Wrap maps a point onto the toroidal playfield [0, w) x [0, h).
func Wrap(p Vec2, w, h float64) Vec2 {
	return Vec2{X: WrapF(p.X, w), Y: WrapF(p.Y, h)}
}

// Body is anything with a center and a collision radius.
type Body interface {
	Center() Vec2
	Radius() float64
}

// Circle is the simplest Body.
type Circle struct {
	Pos Vec2
	R   float64
}

// Center implements Body.
func (c Circle) Center() Vec2 { return c.Pos }

// Radius implements Body.
func (c Circle) Radius() float64 { return c.R }

// Overlaps reports whether two bodies intersect: the distance between their
// centers is strictly less than the sum of their radii.
func Overlaps(a, b Body) bool {
	return a.Center().Dist(b.Center()) < a.Radius()+b.Radius()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
