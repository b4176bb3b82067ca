package field

// Vec3 is a 3-component vector, used for both positions and magnetizations.
type Vec3 [3]float64

// X, Y and Z return the named component of the vector.
func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Field holds the site table of a simulation export, column-sliced into
// positions and magnetizations. Pos[i] and Mag[i] describe the same site;
// len(Pos) == len(Mag) always. Row order follows the source file.
type Field struct {
	Pos []Vec3
	Mag []Vec3
}

// New builds a Field from aligned position and magnetization rows.
// It panics if the slices disagree in length, since both are sliced
// from the same table by the loader.
func New(pos, mag []Vec3) *Field {
	if len(pos) != len(mag) {
		panic("field: position and magnetization row counts differ")
	}
	return &Field{Pos: pos, Mag: mag}
}

// Sites returns the number of rows in the table.
func (f *Field) Sites() int {
	return len(f.Pos)
}

// Magnetized returns a copy of the field containing only the sites whose
// magnetization has at least one nonzero component. Fully demagnetized
// sites carry no direction and are dropped from the visualization.
func (f *Field) Magnetized() *Field {
	out := &Field{
		Pos: make([]Vec3, 0, len(f.Pos)),
		Mag: make([]Vec3, 0, len(f.Mag)),
	}
	for i, m := range f.Mag {
		if m.IsZero() {
			continue
		}
		out.Pos = append(out.Pos, f.Pos[i])
		out.Mag = append(out.Mag, m)
	}
	return out
}

// MzRange returns the minimum and maximum out-of-plane component across
// all sites. It returns (0, 0) for an empty field.
func (f *Field) MzRange() (min, max float64) {
	if len(f.Mag) == 0 {
		return 0, 0
	}
	min, max = f.Mag[0][2], f.Mag[0][2]
	for _, m := range f.Mag[1:] {
		if m[2] < min {
			min = m[2]
		}
		if m[2] > max {
			max = m[2]
		}
	}
	return min, max
}

// Bounds returns the axis-aligned bounding box of the site positions in
// the XY plane. It returns zeros for an empty field.
func (f *Field) Bounds() (minX, minY, maxX, maxY float64) {
	if len(f.Pos) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = f.Pos[0][0], f.Pos[0][0]
	minY, maxY = f.Pos[0][1], f.Pos[0][1]
	for _, p := range f.Pos[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return minX, minY, maxX, maxY
}
