// Package render draws a scenegraph.Scene with raylib. Geometry is uploaded lazily on first
// draw, one GPU mesh per material group, so GPU resources are allocated after the window and
// OpenGL context exist.
package render

import (
	"runtime"
	"sort"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"viz-tiles/internal/geometry"
	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
	"viz-tiles/internal/scenegraph"
)

// part is one uploaded material group. The CPU arrays stay pinned for the mesh's lifetime
// because raylib reads mesh.indices on every draw.
type part struct {
	mesh  rl.Mesh
	group geometry.Group
	src   *geometry.Geometry // kept for line materials, which draw edges on the CPU
	pin   *runtime.Pinner
	data  meshData
}

type meshData struct {
	vertices  []float32
	normals   []float32
	texcoords []float32
	indices   []uint16
}

// Renderer owns the GPU meshes and the lit material. Create with New and Close before the
// window closes.
type Renderer struct {
	cache  map[*geometry.Geometry][]*part
	mtl    rl.Material
	loaded bool
	locs   map[string]int32
	view   scenegraph.CameraSettings
}

// New returns a Renderer with empty caches. GPU state is created on the first Draw.
func New() *Renderer {
	return &Renderer{
		cache: make(map[*geometry.Geometry][]*part),
		locs:  make(map[string]int32),
	}
}

// ensureMaterial loads the lit shader into a default material on first use.
func (r *Renderer) ensureMaterial() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
}

func (r *Renderer) loc(name string) int32 {
	if l, ok := r.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(r.mtl.Shader, name)
	r.locs[name] = l
	return l
}

func (r *Renderer) setFloat(name string, v float32) {
	if l := r.loc(name); l >= 0 {
		rl.SetShaderValue(r.mtl.Shader, l, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (r *Renderer) setVec3(name string, v math32.Vector3) {
	if l := r.loc(name); l >= 0 {
		rl.SetShaderValueV(r.mtl.Shader, l, []float32{v.X, v.Y, v.Z}, rl.ShaderUniformVec3, 1)
	}
}

func (r *Renderer) setFloats(name string, v []float32, typ rl.ShaderUniformDataType, count int32) {
	if l := r.loc(name); l >= 0 {
		rl.SetShaderValueV(r.mtl.Shader, l, v, typ, count)
	}
}

// setFrameUniforms uploads the camera and light state shared by every mesh this frame.
func (r *Renderer) setFrameUniforms(sc *scenegraph.Scene) {
	if !rl.IsShaderValid(r.mtl.Shader) {
		return
	}
	r.setVec3("viewPos", r.view.Position)
	r.setFloat("nearPlane", r.view.Near)
	r.setFloat("farPlane", r.view.Far)

	u := packLights(sc.Lights())
	r.setFloat("lightCount", u.count)
	r.setFloats("lightType", u.kind[:], rl.ShaderUniformFloat, maxLights)
	r.setFloats("lightPos", u.pos[:], rl.ShaderUniformVec3, maxLights)
	r.setFloats("lightDir", u.dir[:], rl.ShaderUniformVec3, maxLights)
	r.setFloats("lightColor", u.color[:], rl.ShaderUniformVec3, maxLights)
	r.setFloats("lightGround", u.ground[:], rl.ShaderUniformVec3, maxLights)
	r.setFloats("lightRange", u.rng[:], rl.ShaderUniformFloat, maxLights)
	r.setFloats("lightDecay", u.decay[:], rl.ShaderUniformFloat, maxLights)
	r.setFloats("lightCosOuter", u.cosOuter[:], rl.ShaderUniformFloat, maxLights)
	r.setFloats("lightCosInner", u.cosInner[:], rl.ShaderUniformFloat, maxLights)
}

// setMaterial uploads m's uniforms and albedo tint.
func (r *Renderer) setMaterial(m *material.Material) {
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.Color(withOpacity(m.Color, m.Opacity))
	}
	if !rl.IsShaderValid(r.mtl.Shader) {
		return
	}
	r.setFloat("shadingModel", float32(shadingModel(m.Model())))
	r.setFloat("flatShading", boolf(m.FlatShading))
	r.setVec3("emissive", scaled(m.Emissive, m.EmissiveIntensity))
	r.setVec3("specularColor", scaled(m.Specular, 1))
	r.setFloat("shininess", m.Shininess)
	r.setFloat("metalness", m.Metalness)
	r.setFloat("roughness", m.Roughness)
	r.setFloat("clearcoat", m.Clearcoat)
	r.setFloat("clearcoatRoughness", m.ClearcoatRoughness)
}

func shadingModel(m material.Model) int {
	switch m {
	case material.Diffuse:
		return shadeLambert
	case material.Specular:
		return shadePhong
	case material.PBR:
		return shadePBR
	case material.Cel:
		return shadeToon
	case material.NormalColor:
		return shadeNormal
	case material.DepthShade:
		return shadeDepth
	case material.MatcapShade:
		return shadeMatcap
	}
	return shadeUnlit
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// parts uploads g on first use, one mesh per group (or one for the whole geometry when it
// has no groups).
func (r *Renderer) parts(g *geometry.Geometry) []*part {
	if ps, ok := r.cache[g]; ok {
		return ps
	}
	var ps []*part
	if len(g.Groups) == 0 {
		if p := upload(g, geometry.Group{Count: indexCount(g)}); p != nil {
			ps = append(ps, p)
		}
	} else {
		for i, gr := range g.Groups {
			if p := upload(g.GroupGeometry(i), gr); p != nil {
				ps = append(ps, p)
			}
		}
	}
	r.cache[g] = ps
	return ps
}

func indexCount(g *geometry.Geometry) int {
	if g.Indexed() {
		return len(g.Indices)
	}
	return len(g.Positions)
}

// upload flattens g into raylib's float and uint16 arrays. Geometry with more vertices than
// uint16 indices can address is expanded to a non-indexed triangle list.
func upload(g *geometry.Geometry, gr geometry.Group) *part {
	if g == nil || g.TriangleCount() == 0 {
		return nil
	}
	order := make([]uint32, 0, indexCount(g))
	if g.Indexed() {
		order = append(order, g.Indices...)
	} else {
		for i := range g.Positions {
			order = append(order, uint32(i))
		}
	}
	var d meshData
	emit := func(i uint32) {
		p, n := g.Positions[i], math32.Vector3{}
		if int(i) < len(g.Normals) {
			n = g.Normals[i]
		}
		var uv math32.Vector2
		if int(i) < len(g.UVs) {
			uv = g.UVs[i]
		}
		d.vertices = append(d.vertices, p.X, p.Y, p.Z)
		d.normals = append(d.normals, n.X, n.Y, n.Z)
		d.texcoords = append(d.texcoords, uv.X, uv.Y)
	}
	mesh := rl.Mesh{}
	if g.Indexed() && len(g.Positions) <= 0xffff {
		for i := range g.Positions {
			emit(uint32(i))
		}
		d.indices = make([]uint16, len(order))
		for k, i := range order {
			d.indices[k] = uint16(i)
		}
		mesh.VertexCount = int32(len(g.Positions))
		mesh.TriangleCount = int32(len(order) / 3)
	} else {
		for _, i := range order {
			emit(i)
		}
		mesh.VertexCount = int32(len(order))
		mesh.TriangleCount = int32(len(order) / 3)
	}

	pin := new(runtime.Pinner)
	pin.Pin(&d.vertices[0])
	pin.Pin(&d.normals[0])
	pin.Pin(&d.texcoords[0])
	mesh.Vertices = &d.vertices[0]
	mesh.Normals = &d.normals[0]
	mesh.Texcoords = &d.texcoords[0]
	if len(d.indices) > 0 {
		pin.Pin(&d.indices[0])
		mesh.Indices = &d.indices[0]
	}
	rl.UploadMesh(&mesh, false)
	return &part{mesh: mesh, group: gr, src: g, pin: pin, data: d}
}

// release frees the GPU buffers. The CPU pointers are Go memory, so they are cleared first
// to keep raylib from freeing them.
func (p *part) release() {
	p.mesh.Vertices = nil
	p.mesh.Normals = nil
	p.mesh.Texcoords = nil
	p.mesh.Indices = nil
	rl.UnloadMesh(&p.mesh)
	p.pin.Unpin()
}

// modelMatrix is scale, then Euler XYZ rotation, then translation.
func modelMatrix(t scenegraph.Transform) rl.Matrix {
	scaleM := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotM := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateZ(t.Rotation.Z), rl.MatrixRotateY(t.Rotation.Y)), rl.MatrixRotateX(t.Rotation.X))
	transM := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rotM), transM)
}

// item is one group of one mesh, queued for drawing.
type item struct {
	part      *part
	mat       *material.Material
	transform scenegraph.Transform
	depth     float32
}

// Draw draws sc from view. Must be called between BeginMode3D and EndMode3D.
// Opaque groups are drawn first, then transparent ones back to front without depth writes.
func (r *Renderer) Draw(sc *scenegraph.Scene, view scenegraph.CameraSettings) {
	r.ensureMaterial()
	r.view = view
	r.setFrameUniforms(sc)

	var opaque, blended []item
	sc.Traverse(func(n scenegraph.Node) {
		switch v := n.(type) {
		case *scenegraph.Mesh:
			if v.Geometry == nil {
				return
			}
			depth := v.Position.Sub(view.Position).Length()
			for _, p := range r.parts(v.Geometry) {
				m := v.MaterialFor(p.group)
				if m == nil {
					continue
				}
				it := item{part: p, mat: m, transform: v.Transform, depth: depth}
				if m.IsTransparent() {
					blended = append(blended, it)
				} else {
					opaque = append(opaque, it)
				}
			}
		case *scenegraph.Points:
			r.drawPoints(v)
		case *scenegraph.Axes:
			drawAxes(v.Size)
		case *scenegraph.Grid:
			div := v.Divisions
			if div <= 0 {
				div = 10
			}
			rl.DrawGrid(int32(div), v.Size/float32(div))
		}
	})

	for _, it := range opaque {
		r.drawItem(it)
	}
	if len(blended) == 0 {
		return
	}
	sort.SliceStable(blended, func(i, j int) bool { return blended[i].depth > blended[j].depth })
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DisableDepthMask()
	for _, it := range blended {
		r.drawItem(it)
	}
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

func (r *Renderer) drawItem(it item) {
	if it.mat.Model() == material.Lines {
		drawEdges(it.part.src, it.transform, it.mat)
		return
	}
	r.setMaterial(it.mat)
	if it.mat.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	rl.DrawMesh(it.part.mesh, r.mtl, modelMatrix(it.transform))
}

// drawEdges draws every triangle edge of g. Dashed materials draw every other segment.
func drawEdges(g *geometry.Geometry, t scenegraph.Transform, m *material.Material) {
	col := rl.Color(withOpacity(m.Color, m.Opacity))
	dashed := m.Type == material.LineDashed && m.DashSize > 0
	line := func(a, b math32.Vector3) {
		a, b = t.Apply(a), t.Apply(b)
		if !dashed {
			rl.DrawLine3D(vec(a), vec(b), col)
			return
		}
		seg := b.Sub(a)
		length := seg.Length()
		if length == 0 {
			return
		}
		dir := seg.DivScalar(length)
		step := m.DashSize + m.GapSize
		for s := float32(0); s < length; s += step {
			e := math32.Min(s+m.DashSize, length)
			rl.DrawLine3D(vec(a.Add(dir.MulScalar(s))), vec(a.Add(dir.MulScalar(e))), col)
		}
	}
	tri := func(i0, i1, i2 int) {
		p := g.Positions
		line(p[i0], p[i1])
		line(p[i1], p[i2])
		line(p[i2], p[i0])
	}
	if g.Indexed() {
		for k := 0; k+2 < len(g.Indices); k += 3 {
			tri(int(g.Indices[k]), int(g.Indices[k+1]), int(g.Indices[k+2]))
		}
		return
	}
	for k := 0; k+2 < len(g.Positions); k += 3 {
		tri(k, k+1, k+2)
	}
}

// drawPoints draws each vertex as a small cube. With size attenuation Size is in world
// units; without it Size is in pixels at the current viewport height.
func (r *Renderer) drawPoints(p *scenegraph.Points) {
	if p.Cloud == nil || p.Cloud.Material == nil {
		return
	}
	m := p.Cloud.Material
	col := rl.Color(withOpacity(m.Color, m.Opacity))
	tanHalf := math32.Tan(math32.DegToRad(r.view.Fovy) / 2)
	h := float32(rl.GetScreenHeight())
	for _, v := range p.Cloud.Positions {
		w := p.Transform.Apply(v)
		edge := m.Size
		if m.SizeAttenuation {
			edge *= tanHalf
		} else if h > 0 {
			edge *= 2 * w.Sub(r.view.Position).Length() * tanHalf / h
		}
		rl.DrawCube(vec(w), edge, edge, edge, col)
	}
}

// drawAxes draws red X, green Y and blue Z from the origin to size.
func drawAxes(size float32) {
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(size, 0, 0), rl.Red)
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, size, 0), rl.Green)
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, size), rl.Blue)
}

func withOpacity(c paint.Color, opacity float32) paint.Color {
	c.A = uint8(math32.Clamp(opacity, 0, 1) * 255)
	return c
}

func vec(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// Release frees every uploaded mesh. Geometry drawn afterwards is uploaded again.
func (r *Renderer) Release() {
	for g, ps := range r.cache {
		for _, p := range ps {
			p.release()
		}
		delete(r.cache, g)
	}
}

// Close releases the meshes and the lit material. Call before the window closes.
func (r *Renderer) Close() {
	r.Release()
	if r.loaded {
		rl.UnloadMaterial(r.mtl)
		r.loaded = false
		r.locs = make(map[string]int32)
	}
}
