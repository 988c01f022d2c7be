package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a built-in mesh.
type Kind string

const (
	Cube  Kind = "cube"  // unit cube centred on the origin
	Plane Kind = "plane" // unit quad in XZ, centred on the origin
)

// generators build the unit mesh for each kind.
var generators = map[Kind]func() rl.Mesh{
	Cube:  func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) },
	Plane: func() rl.Mesh { return rl.GenMeshPlane(1, 1, 1, 1) },
}

// cached holds the mesh and material for a kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	base rl.Shader // the material's own default shader, restored before unloading
}

// Registry maps kinds to mesh+material. Meshes are created on first use so that GPU
// resources are allocated after the window/OpenGL context exists. All kinds share one lit
// shader whose view and light uniforms are set by SetView.
type Registry struct {
	cache    map[Kind]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
	free     unloader
}

// unloader releases GPU resources; tests swap it to observe Unload.
type unloader struct {
	mesh     func(*rl.Mesh)
	material func(rl.Material)
	shader   func(rl.Shader)
}

var gpuUnloader = unloader{
	mesh:     rl.UnloadMesh,
	material: rl.UnloadMaterial,
	shader:   rl.UnloadShader,
}

// NewRegistry returns an empty registry lit from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[Kind]cached),
		lightDir: [3]float32{0.5, 1, 0.5},
		free:     gpuUnloader,
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
	r.applyUniforms()
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	r.applyUniforms()
}

func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	gen, ok := generators[kind]
	if !ok {
		return cached{}, false
	}
	r.ensureShader()
	c := cached{mesh: gen(), mtl: rl.LoadMaterialDefault()}
	c.base = c.mtl.Shader
	if rl.IsShaderValid(r.shader) {
		c.mtl.Shader = r.shader
	}
	r.cache[kind] = c
	return c, true
}

// applyUniforms pushes view and light vectors to the shared shader (cgo-safe: local arrays).
func (r *Registry) applyUniforms() {
	if !r.loaded || !rl.IsShaderValid(r.shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	if loc := rl.GetShaderLocation(r.shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(r.shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
}

// Draw draws one instance of kind at position, scaled per axis and tinted.
// Must be called between BeginMode3D and EndMode3D. Unknown kinds are skipped.
func (r *Registry) Draw(kind Kind, position, scale [3]float32, tint color.RGBA) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	transform := rl.MatrixMultiply(
		rl.MatrixScale(scale[0], scale[1], scale[2]),
		rl.MatrixTranslate(position[0], position[1], position[2]),
	)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload frees every cached mesh, material and the shared shader. Call before closing the
// window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		r.free.mesh(&c.mesh)
		// UnloadMaterial frees any non-default shader; the shared one is freed once below.
		c.mtl.Shader = c.base
		r.free.material(c.mtl)
		delete(r.cache, k)
	}
	if r.loaded && r.shader.ID != 0 {
		r.free.shader(r.shader)
	}
	r.loaded = false
}
