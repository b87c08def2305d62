// prisma - Terminal 3D Solid Sandbox
// Build parametric solids and view them with per-pixel Phong shading.
//
// Controls:
//
//	Mouse drag  - Orbit camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Tab/N       - Next solid
//	1-9         - Select solid
//	Space       - Toggle auto-spin
//	P           - Toggle perspective/orthographic projection
//	X           - Toggle wireframe mode
//	G           - Toggle simple shading (no specular)
//	L           - Light positioning mode (move mouse, click to set, Esc to cancel)
//	R           - Reset view
//	?           - Toggle HUD overlay
//	Esc         - Quit (or cancel light mode)
package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/render"
	"github.com/DelgadoPedro/prisma/pkg/scene"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

var (
	targetFPS int
	bgColor   string
)

// shapeOrder is the cycling order for the viewer and the 1-9 hotkeys.
var shapeOrder = []string{
	"cube", "pyramid", "cylinder", "cone", "sphere", "hemisphere", "torus", "teapot", "star",
}

// buildShape constructs a named solid with its canonical proportions.
func buildShape(name string) (*solids.Mesh, error) {
	switch strings.ToLower(name) {
	case "cube":
		return solids.NewCube(100), nil
	case "pyramid":
		return solids.NewPyramid(100, 150), nil
	case "cylinder":
		return solids.NewCylinder(50, 100, 32), nil
	case "cone":
		return solids.NewCone(50, 100, 32), nil
	case "sphere":
		return solids.NewSphere(50, 16, 16), nil
	case "hemisphere":
		return solids.NewHemisphere(50, 16), nil
	case "torus":
		return solids.NewTorus(50, 20, 32, 16), nil
	case "teapot":
		return solids.NewTeapot(50), nil
	case "star":
		return solids.Extrude(starOutline(50, 25), 30)
	default:
		return nil, fmt.Errorf("unknown solid %q (choose from %s)", name, strings.Join(shapeOrder, ", "))
	}
}

// starOutline traces a five-pointed star in screen coordinates, suitable for
// extrusion.
func starOutline(outer, inner float64) []image.Point {
	points := make([]image.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + math.Pi*float64(i)/5
		points = append(points, image.Point{
			X: int(math.Round(100 + r*math.Cos(angle))),
			Y: int(math.Round(100 + r*math.Sin(angle))),
		})
	}
	return points
}

func main() {
	cmd := &cobra.Command{
		Use:   "prisma [solid]",
		Short: "Terminal 3D solid sandbox",
		Long: `prisma - Terminal 3D Solid Sandbox

Build parametric solids and view them with per-pixel Phong shading.

Controls:
  Mouse drag  - Orbit camera
  Scroll      - Zoom in/out
  W/S/A/D     - Pitch and yaw
  Tab/N       - Next solid
  1-9         - Select solid
  Space       - Toggle auto-spin
  P           - Toggle projection
  X           - Toggle wireframe
  G           - Toggle simple shading
  L           - Position light (mouse to aim, click to set)
  R           - Reset view
  ?           - Toggle HUD overlay
  Esc         - Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape := "cube"
			if len(args) > 0 {
				shape = args[0]
			}
			return run(shape)
		},
	}

	cmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	cmd.Flags().StringVar(&bgColor, "bg", "20,20,30", "Background color (R,G,B)")

	cmd.AddCommand(newInfoCmd(), newSnapshotCmd())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <solid>",
		Short: "Display solid information",
		Long:  "Display vertex, edge and face counts plus the bounding box of a named solid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(shape string) error {
	mesh, err := buildShape(shape)
	if err != nil {
		return err
	}

	min, max := mesh.Bounds()
	size := max.Sub(min)

	fmt.Printf("Solid:      %s\n", mesh.Name)
	fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
	fmt.Printf("Edges:      %d\n", mesh.EdgeCount())
	fmt.Printf("Faces:      %d\n", mesh.FaceCount())
	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", min.X, min.Y, min.Z)
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", max.X, max.Y, max.Z)
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	return nil
}

func newSnapshotCmd() *cobra.Command {
	var (
		out       string
		width     int
		height    int
		pitch     float64
		yaw       float64
		distance  float64
		ortho     bool
		simple    bool
		wireframe bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot <solid>",
		Short: "Render a solid to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := buildShape(args[0])
			if err != nil {
				return err
			}

			pitchRad := pitch * math.Pi / 180
			yawRad := yaw * math.Pi / 180

			if wireframe {
				fb := render.NewFramebuffer(width, height)
				fb.Clear(render.ColorWhite)
				view := render.OrbitTransform(distance, pitchRad, yawRad)
				proj := snapshotProjection(ortho, float64(width)/2, float64(height)/2, distance)
				render.DrawWireframe(fb, mesh, view, proj, render.ColorEdge)
				if err := fb.SavePNG(out); err != nil {
					return fmt.Errorf("save png: %w", err)
				}
			} else {
				p := render.NewPhong(width, height)
				p.SetSimpleShading(simple)
				p.SetViewerPosition(render.OrbitPosition(pitchRad, yawRad, distance))
				ctx := render.Context{
					Camera:     render.CameraTransform(float64(width), float64(height), pitchRad, yawRad),
					Projection: snapshotProjection(ortho, 0, 0, distance),
				}
				ctx.RenderMesh(p, mesh)
				if err := p.Framebuffer().SavePNG(out); err != nil {
					return fmt.Errorf("save png: %w", err)
				}
			}

			fmt.Printf("Wrote %s (%dx%d)\n", out, width, height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "prisma.png", "Output PNG path")
	cmd.Flags().IntVar(&width, "width", 800, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "Image height in pixels")
	cmd.Flags().Float64Var(&pitch, "pitch", 30, "Camera pitch in degrees")
	cmd.Flags().Float64Var(&yaw, "yaw", 45, "Camera yaw in degrees")
	cmd.Flags().Float64Var(&distance, "distance", 300, "Camera distance")
	cmd.Flags().BoolVar(&ortho, "ortho", false, "Use orthographic projection")
	cmd.Flags().BoolVar(&simple, "simple", false, "Skip the specular term")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "Render edges only")
	return cmd
}

func snapshotProjection(ortho bool, cx, cy, distance float64) render.Projection {
	if ortho {
		return render.NewOrthographic(cx, cy, 1)
	}
	return render.NewPerspective(cx, cy, distance, 1)
}

// OrbitAxis tracks one camera angle with spring-damped velocity.
type OrbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewOrbitAxis creates an axis with a harmonica spring for smooth velocity
// decay. Frequency 4.0 with damping 1.0 is critically damped, so the orbit
// coasts to a stop without overshoot.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *OrbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// OrbitState holds the camera orbit with spring physics.
type OrbitState struct {
	Pitch, Yaw OrbitAxis
	Distance   float64
	fps        int
}

func NewOrbitState(fps int) *OrbitState {
	s := &OrbitState{
		Pitch:    NewOrbitAxis(fps),
		Yaw:      NewOrbitAxis(fps),
		Distance: 300,
		fps:      fps,
	}
	s.Pitch.Position = 30 * math.Pi / 180
	s.Yaw.Position = 45 * math.Pi / 180
	return s
}

func (s *OrbitState) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
	// Keep the pitch shy of the poles.
	limit := math.Pi/2 - 0.01
	if s.Pitch.Position > limit {
		s.Pitch.Position = limit
	}
	if s.Pitch.Position < -limit {
		s.Pitch.Position = -limit
	}
}

func (s *OrbitState) ApplyImpulse(pitch, yaw float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
}

func (s *OrbitState) Zoom(delta float64) {
	s.Distance += delta
	if s.Distance < 50 {
		s.Distance = 50
	}
	if s.Distance > 1000 {
		s.Distance = 1000
	}
}

func (s *OrbitState) Reset() {
	*s = *NewOrbitState(s.fps)
}

// ViewState holds view settings that are UI state, not library code.
type ViewState struct {
	Wireframe     bool
	Perspective   bool
	SimpleShading bool
	SpinMode      bool
	LightMode     bool
	LightPos      math3d.Vec3
	PendingLight  math3d.Vec3
	ShowHUD       bool
}

func NewViewState() *ViewState {
	return &ViewState{
		Perspective: true,
		LightPos:    math3d.V3(200, 200, 200),
		ShowHUD:     true,
	}
}

// ScreenToLightPos converts a screen position to a light position on a
// hemisphere in front of the scene.
func (v *ViewState) ScreenToLightPos(screenX, screenY, width, height int) math3d.Vec3 {
	nx := (float64(screenX)/float64(width))*2 - 1
	ny := (float64(screenY)/float64(height))*2 - 1

	lenSq := nx*nx + ny*ny
	if lenSq > 1 {
		l := math.Sqrt(lenSq)
		nx /= l
		ny /= l
		lenSq = 1
	}
	nz := math.Sqrt(1 - lenSq)

	const lightDistance = 350.0
	return math3d.V3(nx, -ny, nz).Normalize().Scale(lightDistance)
}

// HUD renders an overlay with solid info and mode indicators.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int, shapeName string, faceCount int, viewState *ViewState) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows so toggling off works.
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if viewState.LightMode {
		lightMsg := fmt.Sprintf("%s%s%s ◉ LIGHT MODE - Move mouse to position, click to set, Esc to cancel %s",
			bgBlack, bold, fgYellow, reset)
		lightCol := max((width-60)/2, 1)
		fmt.Print(moveTo(height, lightCol) + lightMsg)
		return
	}

	if !viewState.ShowHUD {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(shapeName)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, shapeName, reset)

	polyCol := max(width-12, 1)
	fmt.Printf("%s%s%s%s %d faces %s", moveTo(1, polyCol), bgBlack, fgCyan, bold, faceCount, reset)

	checkWire := "[ ]"
	if viewState.Wireframe {
		checkWire = "[✓]"
	}
	checkPersp := "[ ]"
	if viewState.Perspective {
		checkPersp = "[✓]"
	}
	fmt.Printf("%s%s%s %s Perspective  %s X-Ray (wireframe) %s",
		moveTo(height, 1), bgBlack, fgWhite, checkPersp, checkWire, reset)

	hintCol := max(width-18, 1)
	fmt.Printf("%s%s%s%s L: position light %s", moveTo(height, hintCol), bgBlack, dim, fgYellow, reset)
}

func run(initialShape string) error {
	var bgR, bgG, bgB uint8 = 20, 20, 30
	fmt.Sscanf(bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := render.RGB(bgR, bgG, bgB)

	shapeIdx := 0
	for i, name := range shapeOrder {
		if name == strings.ToLower(initialShape) {
			shapeIdx = i
		}
	}
	mesh, err := buildShape(shapeOrder[shapeIdx])
	if err != nil {
		return err
	}

	stage := scene.New()
	handle := stage.Add(mesh)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	fbWidth, fbHeight := width, height*2
	phong := render.NewPhong(fbWidth, fbHeight)

	orbit := NewOrbitState(targetFPS)
	viewState := NewViewState()
	hud := NewHUD()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ pitch, yaw float64 }{}
	const torqueStrength = 3.0

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	selectShape := func(idx int) {
		if idx < 0 || idx >= len(shapeOrder) {
			return
		}
		next, err := buildShape(shapeOrder[idx])
		if err != nil {
			return
		}
		shapeIdx = idx
		stage.Remove(handle)
		handle = stage.Add(next)
		mesh = next
	}

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fbWidth, fbHeight = width, height*2
				phong.Resize(fbWidth, fbHeight)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"):
					if viewState.LightMode {
						viewState.LightMode = false
					} else {
						cancel()
						return
					}
				case ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("tab", "n"):
					selectShape((shapeIdx + 1) % len(shapeOrder))
				case ev.MatchString("r"):
					orbit.Reset()
					mesh.ResetTransform()
				case ev.MatchString("space"):
					viewState.SpinMode = !viewState.SpinMode
				case ev.MatchString("p"):
					viewState.Perspective = !viewState.Perspective
				case ev.MatchString("x"):
					viewState.Wireframe = !viewState.Wireframe
				case ev.MatchString("g"):
					viewState.SimpleShading = !viewState.SimpleShading
				case ev.MatchString("l"):
					viewState.LightMode = true
					viewState.PendingLight = viewState.LightPos
				case ev.MatchString("+", "="):
					orbit.Zoom(-25)
				case ev.MatchString("-", "_"):
					orbit.Zoom(25)
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					viewState.ShowHUD = !viewState.ShowHUD
				default:
					for i := range shapeOrder {
						if ev.MatchString(fmt.Sprintf("%d", i+1)) {
							selectShape(i)
							break
						}
					}
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				}

			case uv.MouseClickEvent:
				if viewState.LightMode {
					viewState.LightPos = viewState.PendingLight
					viewState.LightMode = false
				} else {
					mouseDown = true
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseReleaseEvent:
				if !viewState.LightMode {
					mouseDown = false
				}

			case uv.MouseMotionEvent:
				if viewState.LightMode {
					viewState.PendingLight = viewState.ScreenToLightPos(ev.X, ev.Y, width, height)
				} else if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					orbit.Zoom(-25)
				case uv.MouseWheelDown:
					orbit.Zoom(25)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		orbit.ApplyImpulse(inputTorque.pitch*dt, inputTorque.yaw*dt)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9

		// Update springs (harmonica handles timing internally)
		orbit.Update()

		if viewState.SpinMode {
			mesh.ApplyTransform(math3d.Euler(0, 0.02, 0))
		}

		pitch := orbit.Pitch.Position
		yaw := orbit.Yaw.Position

		lightPos := viewState.LightPos
		if viewState.LightMode {
			lightPos = viewState.PendingLight
		}

		if viewState.Wireframe {
			fb := phong.Framebuffer()
			fb.Clear(bg)
			view := render.OrbitTransform(orbit.Distance, pitch, yaw)
			proj := viewProjection(viewState, float64(fbWidth)/2, float64(fbHeight)/2, orbit.Distance)
			for _, m := range stage.Meshes() {
				render.DrawWireframe(fb, m, view, proj, render.RGB(0, 255, 128))
			}
		} else {
			phong.Clear(bg)
			phong.SetSimpleShading(viewState.SimpleShading)
			phong.SetLightPosition(lightPos)
			phong.SetViewerPosition(render.OrbitPosition(pitch, yaw, orbit.Distance))
			rctx := render.Context{
				Camera:     render.CameraTransform(float64(fbWidth), float64(fbHeight), pitch, yaw),
				Projection: viewProjection(viewState, 0, 0, orbit.Distance),
			}
			for _, m := range stage.Meshes() {
				rctx.RenderMesh(phong, m)
			}
		}

		// Display
		phong.Framebuffer().Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, mesh.Name, mesh.FaceCount(), viewState)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func viewProjection(v *ViewState, cx, cy, distance float64) render.Projection {
	if v.Perspective {
		return render.NewPerspective(cx, cy, distance, 1)
	}
	return render.NewOrthographic(cx, cy, 1)
}
