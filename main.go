package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	_ "image/png"

	"net/http"
	_ "net/http/pprof"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	texturePath = flag.String("t", "texture.png", "texture file for the opaque quad")
	pprofPort   = flag.String("pprof", "", "http pprof port")
)

type Game struct {
	win *glfw.Window

	Camera   *Camera
	lx, ly   float64
	prevtime float64

	quadRender   *QuadRender
	cuboidRender *CuboidRender
	lineRender   *LineRender

	fps FPS

	exclusiveMouse bool
	closed         bool
}

func initGL(w, h int) *glfw.Window {
	err := glfw.Init()
	if err != nil {
		log.Fatal(err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, gl.TRUE)

	win, err := glfw.CreateWindow(w, h, "boxen", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	win.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		log.Fatal(err)
	}
	glfw.SwapInterval(1) // enable vsync
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	return win
}

func NewGame(w, h int) (*Game, error) {
	var (
		err  error
		game *Game
	)
	game = new(Game)

	mainthread.Call(func() {
		win := initGL(w, h)
		win.SetMouseButtonCallback(game.onMouseButtonCallback)
		win.SetCursorPosCallback(game.onCursorPosCallback)
		win.SetFramebufferSizeCallback(game.onFrameBufferSizeCallback)
		win.SetKeyCallback(game.onKeyCallback)
		game.win = win
	})
	game.Camera = NewCamera(mgl32.Vec3{0, 3, 6})
	game.Camera.Restore(store.GetCameraState())

	game.quadRender, err = NewQuadRender(game)
	if err != nil {
		return nil, err
	}
	game.cuboidRender, err = NewCuboidRender(game)
	if err != nil {
		return nil, err
	}
	game.lineRender, err = NewLineRender(game)
	if err != nil {
		return nil, err
	}
	game.buildScene()
	return game, nil
}

// buildScene places the demo content: a platform and a few colored
// cuboids on the solid pipeline, one opaque textured quad, and one
// translucent quad on the blended pipeline.
func (g *Game) buildScene() {
	builder := NewTextureBuilder().
		Wrap(WrapRepeat, WrapRepeat).
		Filter(FilterLinearMipmapLinear, FilterLinear).
		GenMipmap()
	opaqueTex, err := loadTexture(*texturePath, builder)
	if err != nil {
		log.Printf("load texture %s: %v, falling back to noise", *texturePath, err)
		mainthread.Call(func() {
			opaqueTex = NewTextureBuilder().Build(256, 256, noiseImage(256, 0))
		})
	}
	var blendTex *Texture
	mainthread.Call(func() {
		blendTex = NewTextureBuilder().
			Wrap(WrapMirroredRepeat, WrapMirroredRepeat).
			Build(256, 256, noiseImage(256, 7))
	})

	g.quadRender.AddQuad(opaqueTex, mgl32.Translate3D(0, 0.5, 0.501), Opaque)
	g.quadRender.AddQuad(blendTex,
		mgl32.Translate3D(1.5, 0.75, -0.375).Mul4(mgl32.HomogRotate3DY(radian(30))), Blended)

	g.cuboidRender.AddCuboid(mgl32.Vec3{0, -0.05, 0}, mgl32.Vec3{7, 0.1, 4}, rgba(153, 51, 255))
	g.cuboidRender.AddCuboid(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{1, 1, 1}, rgba(51, 102, 255))
	g.cuboidRender.AddCuboid(mgl32.Vec3{1.375, 0.5, 1}, mgl32.Vec3{1.75, 1, 1}, rgba(153, 153, 255))
	g.cuboidRender.AddCuboid(mgl32.Vec3{-2, 0.5, 1}, mgl32.Vec3{1, 1, 1}, rgba(51, 204, 51))
	g.cuboidRender.AddCuboid(mgl32.Vec3{-1, 0.5, -1}, mgl32.Vec3{1, 1, 1}, rgba(255, 102, 0))
}

func rgba(r, g, b uint8) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

func (g *Game) get3dmat() mgl32.Mat4 {
	width, height := g.win.GetSize()
	mat := mgl32.Perspective(radian(45), float32(width)/float32(height), 0.01, 100)
	return mat.Mul4(g.Camera.Matrix())
}

func (g *Game) setExclusiveMouse(exclusive bool) {
	if exclusive {
		g.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		g.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	g.exclusiveMouse = exclusive
}

func (g *Game) onMouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	if !g.exclusiveMouse {
		g.setExclusiveMouse(true)
	}
}

func (g *Game) onFrameBufferSizeCallback(window *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (g *Game) onCursorPosCallback(win *glfw.Window, xpos float64, ypos float64) {
	if !g.exclusiveMouse {
		return
	}
	if g.lx == 0 && g.ly == 0 {
		g.lx, g.ly = xpos, ypos
		return
	}
	dx, dy := xpos-g.lx, g.ly-ypos
	g.lx, g.ly = xpos, ypos
	g.Camera.OnAngleChange(float32(dx), float32(dy))
}

func (g *Game) onKeyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyTab:
		g.Camera.FlipFlying()
	case glfw.KeyK:
		if err := store.UpdateCameraState(g.Camera.State()); err != nil {
			log.Printf("save camera state: %v", err)
		}
	case glfw.KeyL:
		g.Camera.Restore(store.GetCameraState())
	}
}

func (g *Game) handleKeyInput(dt float64) {
	speed := float32(dt * 5)
	if g.win.GetKey(glfw.KeyEscape) == glfw.Press {
		g.setExclusiveMouse(false)
	}
	if g.win.GetKey(glfw.KeyW) == glfw.Press {
		g.Camera.OnMoveChange(MoveForward, speed)
	}
	if g.win.GetKey(glfw.KeyS) == glfw.Press {
		g.Camera.OnMoveChange(MoveBackward, speed)
	}
	if g.win.GetKey(glfw.KeyA) == glfw.Press {
		g.Camera.OnMoveChange(MoveLeft, speed)
	}
	if g.win.GetKey(glfw.KeyD) == glfw.Press {
		g.Camera.OnMoveChange(MoveRight, speed)
	}
}

func (g *Game) ShouldClose() bool {
	return g.closed
}

func (g *Game) renderStat() {
	g.fps.Update()
	p := g.Camera.Pos()
	title := fmt.Sprintf("boxen [%.2f %.2f %.2f] %d", p.X(), p.Y(), p.Z(), g.fps.Fps())
	g.win.SetTitle(title)
}

func (g *Game) Update() {
	mainthread.Call(func() {
		now := glfw.GetTime()
		dt := now - g.prevtime
		g.prevtime = now
		if dt > 0.02 {
			dt = 0.02
		}

		g.handleKeyInput(dt)

		gl.ClearColor(0, 0, 0.4, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		g.cuboidRender.Draw()
		g.quadRender.Draw()
		g.lineRender.Draw()

		g.renderStat()

		g.win.SwapBuffers()
		glfw.PollEvents()
		g.closed = g.win.ShouldClose()
	})
}

type FPS struct {
	lastUpdate time.Time
	cnt        int
	fps        int
}

func (f *FPS) Update() {
	f.cnt++
	now := time.Now()
	p := now.Sub(f.lastUpdate)
	if p >= time.Second {
		f.fps = int(float64(f.cnt) / p.Seconds())
		f.cnt = 0
		f.lastUpdate = now
	}
}

func (f *FPS) Fps() int {
	return f.fps
}

func run() {
	err := InitStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	if err := initTextureCache(); err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(800, 600)
	if err != nil {
		log.Fatal(err)
	}
	tick := time.Tick(time.Second / 60)
	for !game.ShouldClose() {
		<-tick
		game.Update()
	}
	if err := store.UpdateCameraState(game.Camera.State()); err != nil {
		log.Printf("save camera state: %v", err)
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	flag.Parse()
	go func() {
		if *pprofPort != "" {
			log.Fatal(http.ListenAndServe(*pprofPort, nil))
		}
	}()
	mainthread.Run(run)
}
