package entity

import (
	"math"

	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// Collision works one axis at a time on the velocity before integration.
// Each probe samples a handful of points on the edge that leads the motion
// and ORs the results. Only whole-tile geometry is supported.

// floorXs spreads n sample columns evenly across [x+1, x+w-1].
func floorXs(x, w float64, n int) []float64 {
	if n < 2 {
		return []float64{x + w/2}
	}
	left, right := x+1, x+w-1
	step := (right - left) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = left + step*float64(i)
	}
	return xs
}

func rowTop(y, ts float64) float64 {
	return math.Floor(y/ts) * ts
}

// landsOn reports whether a tile sampled at sampleY stops a body whose bottom
// edge is at bottom. Platforms only catch bodies arriving from above.
func landsOn(p tile.Properties, bottom, sampleY, ts float64) bool {
	if p.Solid {
		return true
	}
	return p.Platform && bottom <= rowTop(sampleY, ts)
}

// onGround samples the row the bottom edge is about to enter.
func onGround(q tile.Query, b *Body, samples int) bool {
	ts := q.TileSize()
	bottom := b.Pos.Y + b.H
	y := bottom + b.Vel.Y
	for _, x := range floorXs(b.Pos.X, b.W, samples) {
		if landsOn(q.PropertiesAt(x, y), bottom, y, ts) {
			return true
		}
	}
	return false
}

// resolveDown stops a falling body on solid ground or a platform and snaps
// its bottom edge to the tile boundary. hurt reports contact with a hazard.
func resolveDown(q tile.Query, b *Body, samples int, hazard Hazard) (landed, hurt bool) {
	if b.Vel.Y <= 0 {
		return false, false
	}
	ts := q.TileSize()
	bottom := b.Pos.Y + b.H
	y := bottom + b.Vel.Y
	for _, x := range floorXs(b.Pos.X, b.W, samples) {
		p := q.PropertiesAt(x, y)
		if landsOn(p, bottom, y, ts) {
			landed = true
		}
		if hazard.Hurts(p) {
			hurt = true
		}
	}
	if !landed {
		return false, hurt
	}
	// Already aligned bodies stay put.
	if rem := bottom - rowTop(bottom, ts); rem > 0 {
		b.Pos.Y = rowTop(bottom, ts) + ts - b.H
	}
	b.Vel.Y = 0
	return true, hurt
}

// resolveHorizontal cancels horizontal motion into a solid tile. There is
// no sliding and no partial move.
func resolveHorizontal(q tile.Query, b *Body, offsets [3]float64) bool {
	if b.Vel.X == 0 {
		return false
	}
	x := b.Pos.X + b.Vel.X
	if b.Vel.X > 0 {
		x += b.W
	}
	for _, off := range offsets {
		if q.PropertiesAt(x, b.Pos.Y+off).Solid {
			b.Vel.X = 0
			return true
		}
	}
	return false
}

// resolveUp cancels upward motion into a solid ceiling.
func resolveUp(q tile.Query, b *Body, samples int) bool {
	if b.Vel.Y >= 0 {
		return false
	}
	y := b.Pos.Y + b.Vel.Y
	for _, x := range floorXs(b.Pos.X, b.W, samples) {
		if q.PropertiesAt(x, y).Solid {
			b.Vel.Y = 0
			return true
		}
	}
	return false
}

// ledgeAhead reports whether the tile below the leading edge is empty.
func ledgeAhead(q tile.Query, b *Body) bool {
	x := b.Pos.X + b.Vel.X - 1
	if b.Vel.X > 0 {
		x = b.Pos.X + b.W + b.Vel.X
	}
	return !q.PropertiesAt(x, b.Pos.Y+b.H+1).Walkable()
}
