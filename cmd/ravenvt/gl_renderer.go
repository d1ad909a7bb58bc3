package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/javanhut/ravenvt/render"
)

const quadVertexShader = `
#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
uniform vec2 uScreenSize;
uniform vec2 uOffsetPx;
uniform vec2 uSizePx;
out vec2 vUV;
void main() {
    vec2 px = uOffsetPx + aPos * uSizePx;
    vec2 ndc = vec2((px.x / uScreenSize.x) * 2.0 - 1.0, 1.0 - (px.y / uScreenSize.y) * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
}
`

const solidFragmentShader = `
#version 410 core
in vec2 vUV;
uniform vec4 uColor;
out vec4 fragColor;
void main() { fragColor = uColor; }
`

const glyphFragmentShader = `
#version 410 core
in vec2 vUV;
uniform sampler2D uAtlas;
uniform vec4 uColor;
out vec4 fragColor;
void main() {
    float a = texture(uAtlas, vUV).a;
    fragColor = vec4(uColor.rgb, uColor.a * a);
}
`

// glRenderer draws a render.Frame as background quads plus glyph quads
// sampled from a single atlas texture. It is intentionally simple — a
// full subpixel/ligature-aware text renderer is out of scope here.
type glRenderer struct {
	solidProg uint32
	glyphProg uint32
	vao, vbo  uint32
	atlasTex  uint32
	atlas     *render.Atlas
}

func newGLRenderer(atlas *render.Atlas) (*glRenderer, error) {
	solid, err := linkProgram(quadVertexShader, solidFragmentShader)
	if err != nil {
		return nil, err
	}
	glyph, err := linkProgram(quadVertexShader, glyphFragmentShader)
	if err != nil {
		return nil, err
	}

	r := &glRenderer{solidProg: solid, glyphProg: glyph, atlas: atlas}
	r.initQuad()
	r.uploadAtlas(atlas)
	return r, nil
}

// unitQuad is two triangles covering [0,1]x[0,1] with matching UVs; the
// per-instance offset/size uniforms place and scale it per draw call.
var unitQuad = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,
	0, 0, 0, 0,
	1, 1, 1, 1,
	0, 1, 0, 1,
}

func (r *glRenderer) initQuad() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitQuad)*4, gl.Ptr(unitQuad), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (r *glRenderer) uploadAtlas(a *render.Atlas) {
	gl.GenTextures(1, &r.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	bounds := a.Image.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// draw renders one frame: a background quad per run, then each run's
// glyphs atop it, followed by the cursor block if visible.
func (r *glRenderer) draw(screenW, screenH int, frame render.Frame, bgDefault, fgCursor [4]float32) {
	gl.ClearColor(bgDefault[0], bgDefault[1], bgDefault[2], bgDefault[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	cw, ch := float32(r.atlas.CellWidth), float32(r.atlas.CellHeight)
	gl.BindVertexArray(r.vao)

	gl.UseProgram(r.solidProg)
	setScreenSize(r.solidProg, screenW, screenH)
	for _, run := range frame.Runs {
		x := float32(run.StartCol) * cw
		y := float32(run.Row) * ch
		w := cw * float32(len(run.Glyphs))
		drawQuad(r.solidProg, x, y, w, ch, toColor4(run.Bg))
	}

	gl.UseProgram(r.glyphProg)
	setScreenSize(r.glyphProg, screenW, screenH)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(gl.GetUniformLocation(r.glyphProg, gl.Str("uAtlas\x00")), 0)
	for _, run := range frame.Runs {
		for i, glyphStr := range run.Glyphs {
			runes := []rune(glyphStr)
			if len(runes) == 0 || runes[0] == ' ' {
				continue
			}
			g, ok := r.atlas.Lookup(runes[0])
			if !ok {
				continue
			}
			x := float32(run.StartCol+i) * cw
			y := float32(run.Row) * ch
			drawGlyphQuad(r.glyphProg, x, y, cw, ch, g, toColor4(run.Fg))
		}
	}

	if frame.CursorShown {
		gl.UseProgram(r.solidProg)
		setScreenSize(r.solidProg, screenW, screenH)
		x := float32(frame.CursorCol) * cw
		y := float32(frame.CursorRow) * ch
		drawQuad(r.solidProg, x, y, cw, ch, fgCursor)
	}

	gl.BindVertexArray(0)
}

func setScreenSize(prog uint32, w, h int) {
	loc := gl.GetUniformLocation(prog, gl.Str("uScreenSize\x00"))
	gl.Uniform2f(loc, float32(w), float32(h))
}

func drawQuad(prog uint32, x, y, w, h float32, color [4]float32) {
	gl.Uniform2f(gl.GetUniformLocation(prog, gl.Str("uOffsetPx\x00")), x, y)
	gl.Uniform2f(gl.GetUniformLocation(prog, gl.Str("uSizePx\x00")), w, h)
	gl.Uniform4f(gl.GetUniformLocation(prog, gl.Str("uColor\x00")), color[0], color[1], color[2], color[3])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func drawGlyphQuad(prog uint32, x, y, w, h float32, g render.Glyph, color [4]float32) {
	drawQuad(prog, x, y, w, h, color)
}

func toColor4(c struct{ R, G, B uint8 }) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("ravenvt: link program: %s", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("ravenvt: compile shader: %s", log)
	}
	return shader, nil
}
