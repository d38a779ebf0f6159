package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"gimbalaim/pkg/aim"
	"gimbalaim/pkg/format"
	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

const (
	width  = 800
	height = 600
	title  = "Gimbal Aim"

	sightLength     = 1.5
	floatsPerVertex = 6
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		in vec3 vc;
		uniform mat4 mvp;
		out vec3 colour;
		void main() {
			colour = vc;
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1);
		}
	` + "\x00"
)

var (
	red    = linalg.NewVector3(0.9, 0.25, 0.25)
	green  = linalg.NewVector3(0.25, 0.8, 0.25)
	blue   = linalg.NewVector3(0.3, 0.45, 0.9)
	grey   = linalg.NewVector3(0.6, 0.6, 0.6)
	yellow = linalg.NewVector3(1, 1, 0)
)

// segment is a coloured line between two points
type segment struct {
	a, b   linalg.Vector3
	colour linalg.Vector3
}

func main() {
	yaw := flag.Float64("yaw", 0, "Platform yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Platform pitch in degrees")
	roll := flag.Float64("roll", 0, "Platform roll in degrees")
	camPitch := flag.Float64("cam-pitch", 30, "Camera gimbal pitch offset in degrees")
	sweep := flag.Float64("sweep", 45, "Camera gimbal yaw sweep speed in degrees per second")
	flag.Parse()

	platform := rotation.Orientation{Yaw: *yaw, Pitch: *pitch, Roll: *roll}
	projector := &aim.Projector{Solver: rotation.NewSolver()}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		panic(err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)
	fmt.Println("Platform", format.Orientation(platform))

	// Compile Shaders
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		panic(err)
	}
	gl.UseProgram(program)

	// Uniforms
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	// Axes, heading and sight line are rebuilt every frame
	vertices := buildVertices(sceneSegments(projector, platform, linalg.Vector3{}))

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))

	colourAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colourAttrib)
	gl.VertexAttribPointer(colourAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	// Global settings
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	// Z-up world viewed from behind-right
	projection := mgl32.Perspective(mgl32.DegToRad(45.0), float32(width)/float32(height), 0.1, 100.0)
	camera := mgl32.LookAtV(mgl32.Vec3{-3, -3, 2.5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	mvp := projection.Mul4(camera)

	gimbal := aim.CameraAngles{Pitch: *camPitch}
	lastFrameTime := glfw.GetTime()
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		// Calculate Delta Time
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		gimbal.Yaw += *sweep * deltaTime
		sol := projector.Solve(platform, gimbal)

		// Title update (every 1 second)
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			status := format.Vector(sol.Vector)
			if !sol.Found {
				status += " degenerate"
			}
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | gimbal %s | sight %s", title, frameCount, format.Camera(gimbal), status))
			frameCount = 0
			lastFpsTime = currentTime
		}

		vertices = buildVertices(sceneSegments(projector, platform, sol.Vector))
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/floatsPerVertex))

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// sceneSegments returns the world axes, the platform heading and the sight
// line. The segment count is constant so the vertex buffer never grows.
func sceneSegments(projector *aim.Projector, platform rotation.Orientation, sight linalg.Vector3) []segment {
	origin := linalg.Vector3{}
	heading := projector.Heading(platform)
	return []segment{
		{origin, linalg.NewVector3(1, 0, 0), red},
		{origin, linalg.NewVector3(0, 1, 0), green},
		{origin, linalg.NewVector3(0, 0, 1), blue},
		{origin, heading.Multiply(0.5), grey},
		{origin, sight.Multiply(sightLength), yellow},
	}
}

func buildVertices(segments []segment) []float32 {
	out := make([]float32, 0, len(segments)*2*floatsPerVertex)
	for _, s := range segments {
		for _, p := range []linalg.Vector3{s.a, s.b} {
			out = append(out,
				float32(p.X), float32(p.Y), float32(p.Z),
				float32(s.colour.X), float32(s.colour.Y), float32(s.colour.Z))
		}
	}
	return out
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return 0, errors.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, errors.Errorf("failed to compile %v: %v", source, infoLog)
	}

	return shader, nil
}
