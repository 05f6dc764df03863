// Package snapshot renders the sleeve scene on the CPU and encodes the result as WebP or PNG.
//
// The rasterizer draws every enabled mesh with a depth buffer, perspective-correct texture coordinates, bilinear
// sampling, hemisphere and directional lighting, linear fog, and normal or additive blending. The windowed
// presenter uploads its output to the GPU each frame, and the snapshot command writes it to disk.
package snapshot

import (
	"image"
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/light"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
)

// Rasterizer renders a scene into a reusable frame buffer. A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	fb    *FrameBuffer
	img   *image.NRGBA
	items []drawItem
	verts []vertex
	poly  [4]vertex
}

type drawItem struct {
	obj   game_object.GameObject
	world [16]float32
	depth float32
}

// vertex is a transformed mesh vertex. Attributes are interpolated linearly in clip space and perspective
// correctly in screen space.
type vertex struct {
	clip   [4]float32
	uv     [2]float32
	normal [3]float32
	world  [3]float32
	depth  float32
}

// shading carries the per-draw state shared by every fragment of a mesh.
type shading struct {
	mat     material.Material
	tex     *image.NRGBA
	sampler common.SamplerStagingData
	lights  []light.Light
	fog     *scene.Fog
	eye     [3]float32
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{fb: NewFrameBuffer(1, 1)}
}

// Render draws sc from its camera at the given size.
//
// Parameters:
//   - sc: the scene
//   - width, height: output size in pixels
//
// Returns:
//   - *image.NRGBA: the rendered frame, reused by the next Render call
func (r *Rasterizer) Render(sc scene.Scene, width, height int) *image.NRGBA {
	width, height = max(width, 1), max(height, 1)
	r.fb.Resize(width, height)
	r.fb.Clear(sc.Background())

	cam := sc.Camera()
	view := cam.ViewMatrix()
	viewProj := cam.ViewProjectionFor(float32(width) / float32(height))

	opaque, transparent := r.collect(sc, view)

	base := shading{lights: sc.Lights(), fog: sc.Fog(), eye: cam.Eye()}
	for _, items := range [][]drawItem{opaque, transparent} {
		for _, item := range items {
			r.draw(item, view, viewProj, base)
		}
	}

	r.img = r.fb.Image(r.img)
	return r.img
}

// collect gathers drawable nodes. Opaque meshes are drawn first, then transparent meshes by render order and
// back to front.
func (r *Rasterizer) collect(sc scene.Scene, view [16]float32) (opaque, transparent []drawItem) {
	r.items = r.items[:0]
	sc.Root().Walk(func(obj game_object.GameObject) {
		if obj.Model() == nil || obj.Material() == nil {
			return
		}
		world := obj.WorldMatrix()
		origin := common.TransformPoint(view[:], world[12], world[13], world[14])
		r.items = append(r.items, drawItem{obj: obj, world: world, depth: -origin[2]})
	})

	sort.SliceStable(r.items, func(i, j int) bool {
		a, b := r.items[i], r.items[j]
		at, bt := a.obj.Material().Transparent(), b.obj.Material().Transparent()
		if at != bt {
			return !at
		}
		if a.obj.RenderOrder() != b.obj.RenderOrder() {
			return a.obj.RenderOrder() < b.obj.RenderOrder()
		}
		if at {
			return a.depth > b.depth
		}
		return false
	})

	split := sort.Search(len(r.items), func(i int) bool { return r.items[i].obj.Material().Transparent() })
	return r.items[:split], r.items[split:]
}

func (r *Rasterizer) draw(item drawItem, view, viewProj [16]float32, sh shading) {
	mdl := item.obj.Model()
	sh.mat = item.obj.Material()
	if res := sh.mat.Map().Resource(); res != nil {
		sh.tex = res.Image()
		sh.sampler = res.Sampler()
	}

	src := mdl.Vertices()
	r.verts = r.verts[:0]
	for _, v := range src {
		wp := common.TransformPoint(item.world[:], v.Position[0], v.Position[1], v.Position[2])
		vp := common.TransformPoint(view[:], wp[0], wp[1], wp[2])
		r.verts = append(r.verts, vertex{
			clip:   common.TransformPoint(viewProj[:], wp[0], wp[1], wp[2]),
			uv:     v.UV,
			normal: common.Normalize3(common.TransformDirection(item.world[:], v.Normal[0], v.Normal[1], v.Normal[2])),
			world:  [3]float32{wp[0], wp[1], wp[2]},
			depth:  -vp[2],
		})
	}

	idx := mdl.Indices()
	for i := 0; i+2 < len(idx); i += 3 {
		n := r.clipNear(r.verts[idx[i]], r.verts[idx[i+1]], r.verts[idx[i+2]])
		for k := 1; k+1 < n; k++ {
			r.triangle(r.poly[0], r.poly[k], r.poly[k+1], sh)
		}
	}
}

// clipNear clips a triangle against the near plane (clip z >= 0) into r.poly and returns the vertex count.
func (r *Rasterizer) clipNear(a, b, c vertex) int {
	in := [3]vertex{a, b, c}
	n := 0
	for i := 0; i < 3; i++ {
		cur, next := in[i], in[(i+1)%3]
		curIn, nextIn := cur.clip[2] >= 0, next.clip[2] >= 0
		if curIn {
			r.poly[n] = cur
			n++
		}
		if curIn != nextIn {
			t := cur.clip[2] / (cur.clip[2] - next.clip[2])
			r.poly[n] = lerpVertex(cur, next, t)
			n++
		}
	}
	return n
}

func lerpVertex(a, b vertex, t float32) vertex {
	var out vertex
	for i := range out.clip {
		out.clip[i] = common.Lerp(a.clip[i], b.clip[i], t)
	}
	for i := range out.uv {
		out.uv[i] = common.Lerp(a.uv[i], b.uv[i], t)
	}
	for i := range out.normal {
		out.normal[i] = common.Lerp(a.normal[i], b.normal[i], t)
		out.world[i] = common.Lerp(a.world[i], b.world[i], t)
	}
	out.depth = common.Lerp(a.depth, b.depth, t)
	return out
}

type screenVertex struct {
	x, y, z, invW float32
}

func (r *Rasterizer) toScreen(v vertex) screenVertex {
	invW := 1 / v.clip[3]
	return screenVertex{
		x:    (v.clip[0]*invW*0.5 + 0.5) * float32(r.fb.Width),
		y:    (0.5 - v.clip[1]*invW*0.5) * float32(r.fb.Height),
		z:    v.clip[2] * invW,
		invW: invW,
	}
}

func (r *Rasterizer) triangle(v0, v1, v2 vertex, sh shading) {
	s0, s1, s2 := r.toScreen(v0), r.toScreen(v1), r.toScreen(v2)

	area := (s1.x-s0.x)*(s2.y-s0.y) - (s2.x-s0.x)*(s1.y-s0.y)
	if area > -1e-8 && area < 1e-8 {
		return
	}
	// screen y points down, so counter-clockwise front faces have negative area here
	backFacing := area > 0
	invArea := 1 / area

	minX := max(int(min(s0.x, s1.x, s2.x)), 0)
	maxX := min(int(max(s0.x, s1.x, s2.x))+1, r.fb.Width-1)
	minY := max(int(min(s0.y, s1.y, s2.y)), 0)
	maxY := min(int(max(s0.y, s1.y, s2.y))+1, r.fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	for py := minY; py <= maxY; py++ {
		fy := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
			fx := float32(px) + 0.5
			b0 := ((s1.x-fx)*(s2.y-fy) - (s2.x-fx)*(s1.y-fy)) * invArea
			b1 := ((s2.x-fx)*(s0.y-fy) - (s0.x-fx)*(s2.y-fy)) * invArea
			b2 := 1 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*s0.z + b1*s1.z + b2*s2.z
			if z < 0 || z > 1 {
				continue
			}
			pix := py*r.fb.Width + px
			if z >= r.fb.Depth[pix] {
				continue
			}

			// perspective-correct weights
			p0, p1, p2 := b0*s0.invW, b1*s1.invW, b2*s2.invW
			sum := p0 + p1 + p2
			p0, p1, p2 = p0/sum, p1/sum, p2/sum

			frag := fragment{
				u:     p0*v0.uv[0] + p1*v1.uv[0] + p2*v2.uv[0],
				v:     p0*v0.uv[1] + p1*v1.uv[1] + p2*v2.uv[1],
				depth: p0*v0.depth + p1*v1.depth + p2*v2.depth,
			}
			for i := range frag.normal {
				frag.world[i] = p0*v0.world[i] + p1*v1.world[i] + p2*v2.world[i]
				frag.normal[i] = p0*v0.normal[i] + p1*v1.normal[i] + p2*v2.normal[i]
				if backFacing {
					frag.normal[i] = -frag.normal[i]
				}
			}

			if !r.shade(pix, frag, sh) {
				continue
			}
			if sh.mat.DepthWrite() {
				r.fb.Depth[pix] = z
			}
		}
	}
}

// Specular returns the Blinn-Phong highlight of the enabled directional lights. Smooth surfaces get a tight, bright
// highlight; a roughness of 1 gives none.
//
// Parameters:
//   - n: the unit surface normal
//   - toEye: the unit direction from the surface to the camera
//   - lights: the scene lights; hemisphere lights are skipped
//   - roughness: the material roughness in [0, 1]
//
// Returns:
//   - common.Color: the additive highlight
func Specular(n, toEye [3]float32, lights []light.Light, roughness float32) common.Color {
	var out common.Color
	gloss := 1 - common.Clamp(roughness, 0, 1)
	if gloss <= 0 {
		return out
	}
	shininess := float64(2 + 126*gloss*gloss)
	for _, l := range lights {
		if !l.Enabled() || l.Type() != light.LightTypeDirectional {
			continue
		}
		d := l.Direction()
		if n[0]*d[0]+n[1]*d[1]+n[2]*d[2] >= 0 {
			continue
		}
		h := common.Normalize3([3]float32{toEye[0] - d[0], toEye[1] - d[1], toEye[2] - d[2]})
		ndoth := n[0]*h[0] + n[1]*h[1] + n[2]*h[2]
		if ndoth <= 0 {
			continue
		}
		s := float32(math.Pow(float64(ndoth), shininess)) * gloss * l.Intensity()
		c := l.Color()
		for i := range out {
			out[i] += c[i] * s
		}
	}
	return out
}

type fragment struct {
	u, v   float32
	normal [3]float32
	world  [3]float32
	depth  float32
}

// shade computes and blends one fragment. It reports false when the fragment is fully transparent.
func (r *Rasterizer) shade(pix int, f fragment, sh shading) bool {
	mat := sh.mat
	rgb := mat.Color()
	alpha := float32(1)
	if mat.Transparent() {
		alpha = mat.Opacity()
	}
	if sh.tex != nil {
		texel := Sample(sh.tex, sh.sampler, f.u, f.v)
		rgb = common.Color{rgb[0] * texel[0], rgb[1] * texel[1], rgb[2] * texel[2]}
		if mat.Transparent() {
			alpha *= texel[3]
		}
	}
	if alpha < 1.0/255 {
		return false
	}

	if !mat.Unlit() {
		n := common.Normalize3(f.normal)
		var irr common.Color
		for _, l := range sh.lights {
			c := l.Irradiance(n)
			irr[0] += c[0]
			irr[1] += c[1]
			irr[2] += c[2]
		}
		k := 1 - 0.5*mat.Metallic()
		toEye := common.Normalize3([3]float32{sh.eye[0] - f.world[0], sh.eye[1] - f.world[1], sh.eye[2] - f.world[2]})
		spec := Specular(n, toEye, sh.lights, mat.Roughness())
		for i := range rgb {
			rgb[i] = rgb[i]*irr[i]*k + spec[i]
		}
	}

	if factor := sh.fog.Factor(f.depth); factor > 0 {
		for i := range rgb {
			rgb[i] = common.Lerp(rgb[i], sh.fog.Color[i], factor)
		}
	}

	dst := r.fb.Color[pix*3 : pix*3+3]
	switch {
	case mat.Blending() == material.BlendingAdditive:
		for i := range dst {
			dst[i] += rgb[i] * alpha
		}
	case mat.Transparent():
		for i := range dst {
			dst[i] = rgb[i]*alpha + dst[i]*(1-alpha)
		}
	default:
		copy(dst, rgb[:])
	}
	return true
}
