package vmath

// BoxF is an axis-aligned box stored as center and half extents
type BoxF struct {
	Center Vec2F
	Half   Vec2F
}

// NewBoxF creates a box centered at c with half extents (hx, hy)
func NewBoxF(c Vec2F, hx, hy float64) BoxF {
	return BoxF{Center: c, Half: Vec2F{hx, hy}}
}

func (b BoxF) MinX() float64 { return b.Center.X - b.Half.X }
func (b BoxF) MaxX() float64 { return b.Center.X + b.Half.X }
func (b BoxF) MinY() float64 { return b.Center.Y - b.Half.Y }
func (b BoxF) MaxY() float64 { return b.Center.Y + b.Half.Y }

// Overlaps reports strict AABB intersection
// Boxes that only share an edge do not overlap
func (b BoxF) Overlaps(o BoxF) bool {
	if b.MaxX() <= o.MinX() || o.MaxX() <= b.MinX() {
		return false
	}
	if b.MaxY() <= o.MinY() || o.MaxY() <= b.MinY() {
		return false
	}
	return true
}
