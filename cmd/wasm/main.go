//go:build js && wasm

package main

import (
	"errors"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/grayramp/grayramp/internal/config"
	"github.com/grayramp/grayramp/internal/engine"
	"github.com/grayramp/grayramp/internal/gradient"
	"github.com/grayramp/grayramp/internal/typeid"
	"github.com/grayramp/grayramp/internal/webgl"
)

const (
	gradientCanvasID = "gradient"
	overlayCanvasID  = "overlay"
)

var (
	eng     *engine.Engine
	surface *webgl.OverlayCanvas
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	log := slog.Default().With("session", typeid.NewSessionID())

	doc := js.Global().Get("document")
	gradientCanvas, err := webgl.NewGradientCanvas(doc.Call("getElementById", gradientCanvasID))
	if err != nil {
		// Nothing is drawn and no input is accepted without a shader.
		log.Error("init gradient surface", "error", err)
		return
	}
	surface, err = webgl.NewOverlayCanvas(doc.Call("getElementById", overlayCanvasID))
	if err != nil {
		log.Error("init overlay surface", "error", err)
		return
	}

	points, err := cfg.Points()
	if err != nil {
		log.Error("seed points", "error", err)
		return
	}
	style, err := cfg.Style()
	if err != nil {
		log.Error("overlay style", "error", err)
		return
	}

	eng = engine.NewEngine(points, gradientCanvas, surface, engine.Options{
		HitRadius: cfg.HitRadius,
		Style:     style,
		Logger:    log,
	})

	// Create the engine API object
	grayramp := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	grayramp.Set("clearPoints", js.FuncOf(clearPoints))
	grayramp.Set("click", js.FuncOf(click))

	// --- Queries (frontend ← engine) ---
	grayramp.Set("getPoints", js.FuncOf(getPoints))
	grayramp.Set("getPoint", js.FuncOf(getPoint))
	grayramp.Set("render", js.FuncOf(render))
	grayramp.Set("getFrames", js.FuncOf(getFrames))

	// Register on global scope
	js.Global().Set("grayramp", grayramp)
	js.Global().Set("clearPoints", grayramp.Get("clearPoints"))

	doc.Call("getElementById", overlayCanvasID).Call("addEventListener", "click", js.FuncOf(onClick))

	eng.Redraw()
	log.Info("editor ready", "points", points.Len(), "max", gradient.MaxPoints)

	// Signal that WASM is ready
	js.Global().Set("grayrampWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Event Handlers ---

func onClick(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	x, y := surface.ClientPoint(args[0])
	// A full point set is already logged by the engine.
	eng.Click(x, y)
	return nil
}

// --- Command Handlers ---

func clearPoints(this js.Value, args []js.Value) interface{} {
	eng.Clear()
	return nil
}

func click(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "missing x, y"})
	}

	action, err := eng.Click(args[0].Float(), args[1].Float())
	if err != nil {
		result := map[string]interface{}{"error": err.Error()}
		if errors.Is(err, gradient.ErrCapacityExceeded) {
			result["full"] = true
		}
		return js.ValueOf(result)
	}

	return js.ValueOf(map[string]interface{}{"action": action.String()})
}

// --- Query Handlers ---

func getPoints(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.PointsJSON())
}

func getPoint(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing point id"})
	}

	p, err := eng.Point(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"id": p.ID, "x": p.Position, "gray": p.Intensity})
}

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func getFrames(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Frames())
}
