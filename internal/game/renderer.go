//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"orbitdemo/internal/control"
	"orbitdemo/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type meshBuffer struct {
	vao, vbo uint32
	count    int32
}

type Renderer struct {
	// Lit mesh program.
	litProg     uint32
	uModel      int32
	uView       int32
	uProj       int32
	uColor      int32
	uLightPos   int32
	uLightPower int32
	uAmbient    int32

	// Flat UI program.
	uiProg   uint32
	uiVAO    uint32
	uiVBO    uint32
	uiURect  int32
	uiUColor int32

	meshes map[scene.MeshKind]meshBuffer

	objects []scene.Object
	light   scene.PointLight
	button  scene.ButtonLayout
}

func NewRenderer(sc scene.Scene) (*Renderer, error) {
	litProg, err := linkProgram(litVertSrc, litFragSrc)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	uiProg, err := linkProgram(uiVertSrc, uiFragSrc)
	if err != nil {
		gl.DeleteProgram(litProg)
		return nil, fmt.Errorf("ui program: %w", err)
	}

	r := &Renderer{
		litProg: litProg,
		uiProg:  uiProg,
		meshes:  make(map[scene.MeshKind]meshBuffer),
		objects: sc.Objects,
		light:   sc.Light,
		button:  sc.Button,
	}

	r.uModel = gl.GetUniformLocation(litProg, gl.Str("uModel\x00"))
	r.uView = gl.GetUniformLocation(litProg, gl.Str("uView\x00"))
	r.uProj = gl.GetUniformLocation(litProg, gl.Str("uProj\x00"))
	r.uColor = gl.GetUniformLocation(litProg, gl.Str("uColor\x00"))
	r.uLightPos = gl.GetUniformLocation(litProg, gl.Str("uLightPos\x00"))
	r.uLightPower = gl.GetUniformLocation(litProg, gl.Str("uLightPower\x00"))
	r.uAmbient = gl.GetUniformLocation(litProg, gl.Str("uAmbient\x00"))
	r.uiURect = gl.GetUniformLocation(uiProg, gl.Str("uRect\x00"))
	r.uiUColor = gl.GetUniformLocation(uiProg, gl.Str("uColor\x00"))

	for _, o := range sc.Objects {
		if _, ok := r.meshes[o.Mesh]; ok {
			continue
		}
		r.meshes[o.Mesh] = uploadMesh(scene.Build(o.Mesh))
	}

	// UI VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.uiVAO)
	gl.GenBuffers(1, &r.uiVBO)
	gl.BindVertexArray(r.uiVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uiVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	return r, nil
}

func uploadMesh(m scene.Mesh) meshBuffer {
	var b meshBuffer
	b.count = int32(m.VertexCount())
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(scene.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)
	return b
}

func (r *Renderer) Destroy() {
	for _, b := range r.meshes {
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if r.uiVBO != 0 {
		gl.DeleteBuffers(1, &r.uiVBO)
	}
	if r.uiVAO != 0 {
		gl.DeleteVertexArrays(1, &r.uiVAO)
	}
	for _, id := range []uint32{r.litProg, r.uiProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Draw renders the scene from cam, then the button on top. winW/winH are the
// window's logical size the button is laid out in; fbW/fbH the framebuffer.
func (r *Renderer) Draw(cam control.Transform, buttonColor control.RGB, winW, winH float64, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(ClearR, ClearG, ClearB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.litProg)

	view := scene.ToF32(cam.View())
	proj := scene.ToF32(scene.Projection(float64(fbW), float64(fbH)))
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	lp := r.light.Position
	gl.Uniform3f(r.uLightPos, float32(lp.X()), float32(lp.Y()), float32(lp.Z()))
	gl.Uniform1f(r.uLightPower, float32(r.light.Intensity*LightPowerScale))
	gl.Uniform1f(r.uAmbient, AmbientLight)

	for _, o := range r.objects {
		b, ok := r.meshes[o.Mesh]
		if !ok {
			continue
		}
		model := scene.ToF32(o.Model())
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.Uniform3f(r.uColor, o.Color[0], o.Color[1], o.Color[2])
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}

	gl.Disable(gl.DEPTH_TEST)
	if x0, y0, x1, y1, ok := r.button.NDC(winW, winH); ok {
		gl.UseProgram(r.uiProg)
		gl.Uniform4f(r.uiURect, x0, y0, x1, y1)
		cr, cg, cb := buttonColor.Floats()
		gl.Uniform3f(r.uiUColor, cr, cg, cb)
		gl.BindVertexArray(r.uiVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindVertexArray(0)
}
