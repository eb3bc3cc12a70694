package opengl

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/widgetgallery"
)

// Options configures Run.
type Options struct {
	Width, Height int
	Title         string
	Style         gui.Style

	// ClearColor fills the framebuffer behind the GUI, packed 0xAABBGGRR.
	ClearColor uint32
}

// Run opens a GLFW window and calls frame once per frame until the window
// is closed. It must be called from the main goroutine.
func Run(opts Options, frame func(ctx *gui.Context)) error {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("opengl backend ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := NewRenderer(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithStyle(opts.Style))

	cr, cg, cb, ca := gui.UnpackRGBA(opts.ClearColor)
	last := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		glfw.PollEvents()
		in := input.Update(dt)

		// The GUI works in window coordinates; the viewport covers the
		// framebuffer, which is larger on high-DPI displays.
		w, h := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		renderer.Resize(w, h)
		if w > 0 {
			renderer.SetFramebufferScale(float32(fw) / float32(w))
		}
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(float32(cr)/255, float32(cg)/255, float32(cb)/255, float32(ca)/255)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		frame(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	return nil
}
