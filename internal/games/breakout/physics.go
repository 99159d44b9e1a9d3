package breakout

import (
	"math"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

// CollisionSide indicates how a block hit was resolved.
type CollisionSide int

const (
	CollisionNone       CollisionSide = iota
	CollisionHorizontal               // Ball came from the left or right
	CollisionVertical                 // Ball came from above or below
	CollisionCorner                   // Ambiguous approach; both axes flipped
)

// Move advances the ball by its velocity scaled by factor.
func (b *Ball) Move(factor float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(factor))
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// BounceWalls reflects the ball off the left, right and top edges of a
// surface of width w, clamping it back inside. It reports whether any wall
// was touched. The bottom edge is open.
func BounceWalls(b *Ball, w float64) bool {
	hit := false

	// Left and right walls
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
		hit = true
	} else if b.Pos.X+b.Radius > w {
		b.Pos.X = w - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
		hit = true
	}

	// Top wall
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		hit = true
	}
	return hit
}

// FellOff reports whether the ball has left through the bottom edge of a
// surface of height h.
func FellOff(b *Ball, h float64) bool {
	return b.Pos.Y >= h+b.Radius
}

// BouncePaddle deflects a downward-moving ball off the paddle.
// The outgoing angle depends on where the ball hit: the offset from the
// paddle center, normalized to [-1, 1], times deflection becomes the
// horizontal velocity. The result is rescaled to speed and the ball is
// placed on the paddle's top edge. Returns false when there is no contact.
func BouncePaddle(b *Ball, p Paddle, deflection, speed float64) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	if !core.CircleIntersectsRect(b.Pos, b.Radius, p.Rect()) {
		return false
	}

	hit := core.ClampF((b.Pos.X-p.CenterX())/(p.Width/2), -1, 1)
	b.Vel = core.V(hit*deflection, -math.Abs(b.Vel.Y)).WithLen(speed)
	b.Pos.Y = p.Y - b.Radius
	return true
}

// HitBlock resolves the first live block the ball overlaps, in slice order.
// prev is the ball position before this frame's move: when it lay entirely
// beside the block on one axis only, the ball is reflected on that axis and
// snapped to the block edge; otherwise both axes are reflected in place.
// The hit block is marked destroyed. Returns its index, or -1.
func HitBlock(b *Ball, prev core.Vec, blocks []Block) (int, CollisionSide) {
	for i := range blocks {
		blk := &blocks[i]
		if blk.Destroyed {
			continue
		}
		r := blk.Rect()
		if !core.CircleIntersectsRect(b.Pos, b.Radius, r) {
			continue
		}

		blk.Destroyed = true

		beside := prev.X+b.Radius <= r.X || prev.X-b.Radius >= r.Right()
		aboveOrBelow := prev.Y+b.Radius <= r.Y || prev.Y-b.Radius >= r.Bottom()

		switch {
		case beside && !aboveOrBelow:
			b.Vel.X = -b.Vel.X
			if prev.X < r.X {
				b.Pos.X = r.X - b.Radius
			} else {
				b.Pos.X = r.Right() + b.Radius
			}
			return i, CollisionHorizontal
		case aboveOrBelow && !beside:
			b.Vel.Y = -b.Vel.Y
			if prev.Y < r.Y {
				b.Pos.Y = r.Y - b.Radius
			} else {
				b.Pos.Y = r.Bottom() + b.Radius
			}
			return i, CollisionVertical
		default:
			b.Vel.X = -b.Vel.X
			b.Vel.Y = -b.Vel.Y
			return i, CollisionCorner
		}
	}
	return -1, CollisionNone
}

// ClampPaddle keeps the paddle within [0, w - width].
func ClampPaddle(p *Paddle, w float64) {
	p.X = core.ClampF(p.X, 0, w-p.Width)
}
