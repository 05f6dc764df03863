package common

import (
	"math"
)

// Matrices in this package are flat 16-element slices in column-major order, the layout WebGPU uniforms use.
// Element (row r, column c) lives at index c*4+r.

// Identity resets m to the identity matrix.
func Identity(m []float32) {
	clear(m[:16])
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 stores a*b in out. out may alias a or b.
//
// Parameters:
//   - out: destination, at least 16 elements
//   - a: left-hand matrix
//   - b: right-hand matrix
func Mul4(out, a, b []float32) {
	var res [16]float32
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[k*4+row] * b[col*4+k]
			}
			res[col*4+row] = sum
		}
	}
	copy(out, res[:])
}

// Perspective writes a right-handed perspective projection into out.
// Depth maps to the WebGPU clip range [0, 1] with near at 0 and far at 1.
//
// Parameters:
//   - out: destination, at least 16 elements
//   - fovY: vertical field of view in radians
//   - aspect: width / height
//   - near, far: clip distances, 0 < near < far
func Perspective(out []float32, fovY, aspect, near, far float32) {
	focal := float32(1 / math.Tan(float64(fovY)/2))
	depth := 1 / (near - far)

	clear(out[:16])
	out[0] = focal / aspect
	out[5] = focal
	out[10] = far * depth
	out[11] = -1
	out[14] = near * far * depth
}

// BuildModelMatrix writes translate * Ry * Rx * Rz * scale into out.
//
// Parameters:
//   - out: destination, at least 16 elements
//   - posX, posY, posZ: translation
//   - rotX, rotY, rotZ: Euler angles in radians, applied Z first then X then Y
//   - scaleX, scaleY, scaleZ: per-axis scale
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	sinX, cosX := sincos(rotX)
	sinY, cosY := sincos(rotY)
	sinZ, cosZ := sincos(rotZ)

	right := [3]float32{cosY*cosZ + sinY*sinX*sinZ, cosX * sinZ, cosY*sinX*sinZ - sinY*cosZ}
	up := [3]float32{sinY*sinX*cosZ - cosY*sinZ, cosX * cosZ, sinY*sinZ + cosY*sinX*cosZ}
	forward := [3]float32{sinY * cosX, -sinX, cosY * cosX}

	setColumn(out, 0, scale3(right, scaleX), 0)
	setColumn(out, 1, scale3(up, scaleY), 0)
	setColumn(out, 2, scale3(forward, scaleZ), 0)
	setColumn(out, 3, [3]float32{posX, posY, posZ}, 1)
}

// LookAt writes the view matrix of a camera at eye looking toward center into out.
//
// Parameters:
//   - out: destination, at least 16 elements
//   - eyeX, eyeY, eyeZ: camera position
//   - centerX, centerY, centerZ: look-at point
//   - upX, upY, upZ: world up, usually (0, 1, 0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	eye := [3]float32{eyeX, eyeY, eyeZ}
	back := normalizeOr(sub3(eye, [3]float32{centerX, centerY, centerZ}), [3]float32{0, 0, 1})
	side := normalizeOr(cross3([3]float32{upX, upY, upZ}, back), [3]float32{1, 0, 0})
	up := cross3(back, side)

	for i, axis := range [3][3]float32{side, up, back} {
		out[i], out[4+i], out[8+i] = axis[0], axis[1], axis[2]
		out[12+i] = -dot3(axis, eye)
	}
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// TransformPoint returns m * (x, y, z, 1) in homogeneous coordinates.
func TransformPoint(m []float32, x, y, z float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15],
	}
}

// TransformDirection applies the rotation and scale part of m to (x, y, z). The result is not normalized.
func TransformDirection(m []float32, x, y, z float32) [3]float32 {
	return [3]float32{
		m[0]*x + m[4]*y + m[8]*z,
		m[1]*x + m[5]*y + m[9]*z,
		m[2]*x + m[6]*y + m[10]*z,
	}
}

// Normalize3 returns v scaled to unit length, or the zero vector when v has no length.
func Normalize3(v [3]float32) [3]float32 {
	return normalizeOr(v, [3]float32{})
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

func setColumn(m []float32, col int, v [3]float32, w float32) {
	m[col*4], m[col*4+1], m[col*4+2], m[col*4+3] = v[0], v[1], v[2], w
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(v [3]float32, k float32) [3]float32 {
	return [3]float32{v[0] * k, v[1] * k, v[2] * k}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalizeOr(v, fallback [3]float32) [3]float32 {
	length := float32(math.Sqrt(float64(dot3(v, v))))
	if length == 0 {
		return fallback
	}
	return scale3(v, 1/length)
}
