// cmd/backdrop/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-animated-bg/internal/app"
	"go-animated-bg/internal/config"
	"go-animated-bg/internal/defs"
	"go-animated-bg/internal/event"
	"go-animated-bg/internal/state"
	"go-animated-bg/internal/utils"
	"go-animated-bg/pkg/render"
)

type options struct {
	skin     string
	seed     int64
	skins    string
	headless bool
	frames   int
	out      string
	width    int
	height   int
	dpr      float64
	pprof    string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.skin, "skin", string(defs.SkinMotherboard), "skin to start with")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 — from the clock)")
	flag.StringVar(&o.skins, "skins", "", "JSON file with skin definition overrides")
	flag.BoolVar(&o.headless, "headless", false, "render to a PNG file without opening a window")
	flag.IntVar(&o.frames, "frames", 120, "frames to simulate in headless mode")
	flag.StringVar(&o.out, "out", "backdrop.png", "output PNG in headless mode")
	flag.IntVar(&o.width, "width", config.ScreenWidth, "surface width in logical pixels")
	flag.IntVar(&o.height, "height", config.ScreenHeight, "surface height in logical pixels")
	flag.Float64Var(&o.dpr, "dpr", 1, "device pixel ratio until the window reports its own")
	flag.StringVar(&o.pprof, "pprof", "", "address for net/http/pprof, e.g. localhost:6060")
	flag.Parse()
	return o
}

// AppGame — ebiten.Game поверх машины состояний
type AppGame struct {
	stateMachine   *state.StateMachine
	host           *state.Host
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime) // шаг ограничивает app.StepFor
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout сообщает движку логический размер окна и DPR и возвращает размер
// буфера в физических пикселях.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	a.host.Resize(float64(outsideWidth), float64(outsideHeight), dpr)
	return int(math.Ceil(float64(outsideWidth) * dpr)), int(math.Ceil(float64(outsideHeight) * dpr))
}

func loadLibrary(path string) (defs.Library, error) {
	if path == "" {
		return defs.DefaultLibrary(), nil
	}
	return defs.LoadSkinDefinitions(path)
}

func runWindow(lib defs.Library, o options) error {
	host := state.NewHost(lib, o.seed)
	index := host.IndexOf(defs.SkinID(o.skin))
	if index < 0 {
		return fmt.Errorf("%w: %s", defs.ErrUnknownSkin, o.skin)
	}
	host.Dispatcher.Subscribe(event.SkinChanged, event.ListenerFunc(func(e event.Event) {
		if id, ok := e.Data.(defs.SkinID); ok {
			if def, err := lib.Get(id); err == nil {
				ebiten.SetWindowTitle("Animated Background: " + def.Name)
			}
		}
	}))

	sm := state.NewStateMachine()
	game := &AppGame{
		stateMachine:   sm,
		host:           host,
		lastUpdateTime: time.Now(),
	}
	// Размер до первого Layout, чтобы первый скин смонтировался сразу
	host.Resize(float64(o.width), float64(o.height), o.dpr)
	first, err := state.NewBackdropState(sm, host, index)
	if err != nil {
		return err
	}
	sm.SetState(first)
	defer sm.SetState(nil)

	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

// runHeadless прогоняет кадры с шагом 1/60 с на программном холсте и
// сохраняет последний кадр в PNG.
func runHeadless(lib defs.Library, o options) error {
	def, err := lib.Get(defs.SkinID(o.skin))
	if err != nil {
		return err
	}
	engine, err := app.NewEngine(def, utils.NewPRNGService(o.seed))
	if err != nil {
		return err
	}
	w, h := float64(o.width), float64(o.height)
	if err := engine.Mount(nil, w, h, o.dpr); err != nil {
		return err
	}
	defer engine.Unmount()

	canvas := render.NewRasterCanvas(w, h, engine.Surface().DPR())
	canvas.Clear(config.BackgroundColor)
	engine.SetTarget(canvas)

	start := time.Now()
	if err := engine.Scheduler().Run(context.Background(), 0, o.frames); err != nil {
		return err
	}
	log.Printf("Simulated %d frames of %s in %v", engine.Scheduler().Frames(), def.ID, time.Since(start))

	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.out, err)
	}
	defer f.Close()
	if err := canvas.WritePNG(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.out, err)
	}
	b := canvas.Image().Bounds()
	log.Printf("Wrote %dx%d snapshot to %s", b.Dx(), b.Dy(), o.out)
	return nil
}

func main() {
	o := parseFlags()
	if o.pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(o.pprof, nil))
		}()
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	lib, err := loadLibrary(o.skins)
	if err != nil {
		log.Fatal(err)
	}
	if o.headless {
		err = runHeadless(lib, o)
	} else {
		err = runWindow(lib, o)
	}
	if err != nil {
		log.Fatal(err)
	}
}
