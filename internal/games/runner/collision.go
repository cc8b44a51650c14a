package runner

import "github.com/okulov/runcade/internal/core"

// boxInset compensates for the 1-cell visual border around sprites so that
// near-misses that look clear on screen do not register as hits.
const boxInset = 1

// Collides runs the two-phase AABB check between the player and an obstacle.
// Phase one tests the outlines, each inset by one cell. Only when those
// overlap does phase two test every pair of fine sub-boxes, translated into
// screen coordinates. Sub-boxes are not inset; the outline inset already
// absorbs the border.
func Collides(playerOuter core.Rect, playerBoxes []core.Rect, obsOuter core.Rect, obsBoxes []core.Rect) bool {
	if !playerOuter.Inset(boxInset).Intersects(obsOuter.Inset(boxInset)) {
		return false
	}

	for _, pb := range playerBoxes {
		p := pb.Translate(playerOuter.X, playerOuter.Y)
		for _, ob := range obsBoxes {
			o := ob.Translate(obsOuter.X, obsOuter.Y)
			if p.Intersects(o) {
				return true
			}
		}
	}
	return false
}
