package math

// Matrix3 is a 3x3 matrix stored row-major, used for camera bases and
// mesh axis rotations. Multiplication by a Vector3 treats the vector as
// a column.
type Matrix3 [3]Vector3

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromColumns builds a matrix whose columns are x, y, z — the standard
// way to build a camera or object basis from three orthonormal axes.
func FromColumns(x, y, z Vector3) Matrix3 {
	return Matrix3{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}
}

func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		m[0].X*v.X + m[0].Y*v.Y + m[0].Z*v.Z,
		m[1].X*v.X + m[1].Y*v.Y + m[1].Z*v.Z,
		m[2].X*v.X + m[2].Y*v.Y + m[2].Z*v.Z,
	}
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.at(i, k) * o.at(k, j)
			}
			r.set(i, j, sum)
		}
	}
	return r
}

func (m Matrix3) at(row, col int) float64 {
	switch col {
	case 0:
		return m[row].X
	case 1:
		return m[row].Y
	default:
		return m[row].Z
	}
}

func (m *Matrix3) set(row, col int, val float64) {
	switch col {
	case 0:
		m[row].X = val
	case 1:
		m[row].Y = val
	default:
		m[row].Z = val
	}
}

// RotationAxis builds the rotation matrix for a named axis (0=X, 1=Y,
// 2=Z) by the given angle in degrees, matching the task descriptor's
// Mesh.rotates{dim, degree} entries.
func RotationAxis(dim int, degreeAngle float64) Matrix3 {
	rad := degreeAngle * Pi / 180
	c, s := cos(rad), sin(rad)
	switch dim {
	case 0:
		return Matrix3{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		}
	case 1:
		return Matrix3{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		}
	default:
		return Matrix3{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}
	}
}
