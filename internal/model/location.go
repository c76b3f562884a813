package model

import (
	"fmt"
	"math"
)

// Location представляет координаты в игровом мире.
// Value type, передаётся по значению (immutable).
type Location struct {
	X float64
	Y float64
	Z float64
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y, z float64) Location {
	return Location{X: x, Y: y, Z: z}
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt для hot path).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns euclidean distance to another point.
func (l Location) Distance(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}

// MoveToward returns the point reached after walking at most step units toward target.
// Overshoot is clamped to target.
func (l Location) MoveToward(target Location, step float64) Location {
	dist := l.Distance(target)
	if dist <= step || dist == 0 {
		return target
	}
	k := step / dist
	return Location{
		X: l.X + (target.X-l.X)*k,
		Y: l.Y + (target.Y-l.Y)*k,
		Z: l.Z + (target.Z-l.Z)*k,
	}
}

// String formats location as "(x, y, z)".
func (l Location) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", l.X, l.Y, l.Z)
}
