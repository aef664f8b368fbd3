//go:build android

package game

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"orbitdemo/internal/control"
	"orbitdemo/internal/scene"
)

const litVertSrcES = `
attribute vec3 aPos;
attribute vec3 aNormal;
uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;
varying vec3 vWorld;
varying vec3 vNormal;
void main() {
  vec4 world = uModel * vec4(aPos, 1.0);
  vWorld = world.xyz;
  vNormal = mat3(uModel[0].xyz, uModel[1].xyz, uModel[2].xyz) * aNormal;
  gl_Position = uProj * uView * world;
}`

const litFragSrcES = `
precision mediump float;
uniform vec3 uColor;
uniform vec3 uLightPos;
uniform float uLightPower;
uniform float uAmbient;
varying vec3 vWorld;
varying vec3 vNormal;
void main() {
  vec3 n = normalize(vNormal);
  vec3 toLight = uLightPos - vWorld;
  float dist2 = max(dot(toLight, toLight), 0.0001);
  float diff = max(dot(n, normalize(toLight)), 0.0);
  float lit = diff * uLightPower / (12.566 * dist2);
  vec3 col = uColor * (uAmbient + lit);
  gl_FragColor = vec4(pow(col, vec3(1.0 / 2.2)), 1.0);
}`

const uiVertSrcES = `
attribute vec2 aPos;
uniform vec4 uRect;
void main() {
  gl_Position = vec4(mix(uRect.xy, uRect.zw, aPos), 0.0, 1.0);
}`

const uiFragSrcES = `
precision mediump float;
uniform vec3 uColor;
void main() {
  gl_FragColor = vec4(uColor, 1.0);
}`

type mobileMesh struct {
	buf   gl.Buffer
	count int
}

type mobileRenderer struct {
	lit         gl.Program
	aPos        gl.Attrib
	aNormal     gl.Attrib
	uModel      gl.Uniform
	uView       gl.Uniform
	uProj       gl.Uniform
	uColor      gl.Uniform
	uLightPos   gl.Uniform
	uLightPower gl.Uniform
	uAmbient    gl.Uniform

	ui      gl.Program
	uiPos   gl.Attrib
	uiRect  gl.Uniform
	uiColor gl.Uniform
	uiQuad  gl.Buffer

	meshes map[scene.MeshKind]mobileMesh

	objects []scene.Object
	light   scene.PointLight
	button  scene.ButtonLayout
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}

func newMobileRenderer(glctx gl.Context, sc scene.Scene) (*mobileRenderer, error) {
	lit, err := linkProgram(glctx, litVertSrcES, litFragSrcES)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	ui, err := linkProgram(glctx, uiVertSrcES, uiFragSrcES)
	if err != nil {
		glctx.DeleteProgram(lit)
		return nil, fmt.Errorf("ui program: %w", err)
	}

	r := &mobileRenderer{
		lit:         lit,
		aPos:        glctx.GetAttribLocation(lit, "aPos"),
		aNormal:     glctx.GetAttribLocation(lit, "aNormal"),
		uModel:      glctx.GetUniformLocation(lit, "uModel"),
		uView:       glctx.GetUniformLocation(lit, "uView"),
		uProj:       glctx.GetUniformLocation(lit, "uProj"),
		uColor:      glctx.GetUniformLocation(lit, "uColor"),
		uLightPos:   glctx.GetUniformLocation(lit, "uLightPos"),
		uLightPower: glctx.GetUniformLocation(lit, "uLightPower"),
		uAmbient:    glctx.GetUniformLocation(lit, "uAmbient"),
		ui:          ui,
		uiPos:       glctx.GetAttribLocation(ui, "aPos"),
		uiRect:      glctx.GetUniformLocation(ui, "uRect"),
		uiColor:     glctx.GetUniformLocation(ui, "uColor"),
		meshes:      make(map[scene.MeshKind]mobileMesh),
		objects:     sc.Objects,
		light:       sc.Light,
		button:      sc.Button,
	}

	for _, o := range sc.Objects {
		if _, ok := r.meshes[o.Mesh]; ok {
			continue
		}
		m := scene.Build(o.Mesh)
		buf := glctx.CreateBuffer()
		glctx.BindBuffer(gl.ARRAY_BUFFER, buf)
		glctx.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, m.Vertices...), gl.STATIC_DRAW)
		r.meshes[o.Mesh] = mobileMesh{buf: buf, count: m.VertexCount()}
	}

	r.uiQuad = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.uiQuad)
	glctx.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian,
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	), gl.STATIC_DRAW)

	return r, nil
}

func (r *mobileRenderer) destroy(glctx gl.Context) {
	for _, m := range r.meshes {
		glctx.DeleteBuffer(m.buf)
	}
	glctx.DeleteBuffer(r.uiQuad)
	glctx.DeleteProgram(r.lit)
	glctx.DeleteProgram(r.ui)
}

func (r *mobileRenderer) draw(glctx gl.Context, cam control.Transform, buttonColor control.RGB, sz size.Event) {
	if sz.WidthPx <= 0 || sz.HeightPx <= 0 {
		return
	}
	w, h := float64(sz.WidthPx), float64(sz.HeightPx)

	glctx.Viewport(0, 0, sz.WidthPx, sz.HeightPx)
	glctx.ClearColor(ClearR, ClearG, ClearB, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	glctx.Enable(gl.DEPTH_TEST)
	glctx.UseProgram(r.lit)
	view := scene.ToF32(cam.View())
	proj := scene.ToF32(scene.Projection(w, h))
	glctx.UniformMatrix4fv(r.uView, view[:])
	glctx.UniformMatrix4fv(r.uProj, proj[:])
	lp := r.light.Position
	glctx.Uniform3f(r.uLightPos, float32(lp.X()), float32(lp.Y()), float32(lp.Z()))
	glctx.Uniform1f(r.uLightPower, float32(r.light.Intensity*LightPowerScale))
	glctx.Uniform1f(r.uAmbient, AmbientLight)

	const stride = scene.FloatsPerVertex * 4
	glctx.EnableVertexAttribArray(r.aPos)
	glctx.EnableVertexAttribArray(r.aNormal)
	for _, o := range r.objects {
		m, ok := r.meshes[o.Mesh]
		if !ok {
			continue
		}
		model := scene.ToF32(o.Model())
		glctx.UniformMatrix4fv(r.uModel, model[:])
		glctx.Uniform3f(r.uColor, o.Color[0], o.Color[1], o.Color[2])
		glctx.BindBuffer(gl.ARRAY_BUFFER, m.buf)
		glctx.VertexAttribPointer(r.aPos, 3, gl.FLOAT, false, stride, 0)
		glctx.VertexAttribPointer(r.aNormal, 3, gl.FLOAT, false, stride, 3*4)
		glctx.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	glctx.DisableVertexAttribArray(r.aPos)
	glctx.DisableVertexAttribArray(r.aNormal)
	glctx.Disable(gl.DEPTH_TEST)

	x0, y0, x1, y1, ok := r.button.NDC(w, h)
	if !ok {
		return
	}
	glctx.UseProgram(r.ui)
	glctx.Uniform4f(r.uiRect, x0, y0, x1, y1)
	cr, cg, cb := buttonColor.Floats()
	glctx.Uniform3f(r.uiColor, cr, cg, cb)
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.uiQuad)
	glctx.EnableVertexAttribArray(r.uiPos)
	glctx.VertexAttribPointer(r.uiPos, 2, gl.FLOAT, false, 2*4, 0)
	glctx.DrawArrays(gl.TRIANGLES, 0, 6)
	glctx.DisableVertexAttribArray(r.uiPos)
}
