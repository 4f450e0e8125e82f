package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lenia/internal/config"
	"lenia/internal/engine"
	"lenia/internal/grid"
	"lenia/internal/seed"
)

// kernelKeys maps the digit row onto kernel indices: 1..9 toggle kernels
// 0..8 and 0 toggles kernel 9.
var kernelKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
	ebiten.KeyDigit8,
	ebiten.KeyDigit9,
	ebiten.KeyDigit0,
}

type Game struct {
	engine  *engine.Engine
	rng     *rand.Rand
	texture *ebiten.Image
	pix     []byte
	h, w    int
	scale   int
	paused  bool
}

func NewGame(e *engine.Engine, rng *rand.Rand, scale int, paused bool) *Game {
	h, w := e.Shape()
	return &Game{
		engine:  e,
		rng:     rng,
		texture: ebiten.NewImage(w, h),
		pix:     make([]byte, h*w*4),
		h:       h,
		w:       w,
		scale:   scale,
		paused:  paused,
	}
}

func (g *Game) reseed() error {
	fields := make([]*grid.Field, g.engine.ChannelCount())
	for i := range fields {
		fields[i] = grid.MustNew(g.h, g.w)
	}
	if err := seed.InitAquarium(fields, g.rng); err != nil {
		return err
	}
	for i, f := range fields {
		if err := g.engine.SetChannel(i, f); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) inject() error {
	fields := g.engine.Channels()
	if _, _, err := seed.InjectRandom(fields, seed.Aquarium(), g.rng); err != nil {
		return err
	}
	for i, f := range fields {
		if err := g.engine.SetChannel(i, f); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		if err := g.reseed(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if err := g.inject(); err != nil {
			return err
		}
	}
	for i, key := range kernelKeys {
		if i >= g.engine.KernelCount() {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			if _, err := g.engine.ToggleKernel(i); err != nil {
				return err
			}
		}
	}

	if g.paused {
		return nil
	}
	return g.engine.Step(context.Background())
}

func (g *Game) Draw(screen *ebiten.Image) {
	fields := g.engine.Channels()

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			base := (y*g.w + x) * 4
			g.pix[base] = channelByte(fields, 0, y, x)
			g.pix[base+1] = channelByte(fields, 1, y, x)
			g.pix[base+2] = channelByte(fields, 2, y, x)
			g.pix[base+3] = 0xFF
		}
	}
	g.texture.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.texture, op)

	status := fmt.Sprintf("step=%d active=%d/%d", g.engine.StepCount(), len(g.engine.ActiveKernels()), g.engine.KernelCount())
	for i, f := range fields {
		status += fmt.Sprintf(" m%d=%.1f", i, f.Sum())
	}
	if g.paused {
		status += " [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, 18, color.White)

	help := "space pause    r reset    a inject creature    1-9,0 toggle kernels"
	text.Draw(screen, help, basicfont.Face7x13, 6, 34, color.White)
}

func (g *Game) Layout(outW, outH int) (int, int) {
	return g.w * g.scale, g.h * g.scale
}

func channelByte(fields []*grid.Field, c, y, x int) byte {
	if c >= len(fields) {
		return 0
	}
	v := fields[c].At(y, x)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(v * 255)
}

func main() {
	presetPath := flag.String("preset", "", "preset JSON path (empty uses the built-in aquarium)")
	scale := flag.Int("scale", 1, "display pixels per cell")
	seedFlag := flag.Int64("seed", 1, "rng seed for creature placement")
	paused := flag.Bool("paused", false, "start paused")
	workers := flag.Int("workers", 0, "convolution worker count (0 uses GOMAXPROCS)")
	flag.Parse()

	if *scale < 1 {
		log.Fatal("scale must be >= 1")
	}

	preset := config.Default()
	if *presetPath != "" {
		loaded, err := config.LoadFile(*presetPath)
		if err != nil {
			log.Fatal(err)
		}
		preset = loaded
	}

	cfg := preset.EngineConfig()
	cfg.Workers = *workers
	e, err := engine.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(e, rand.New(rand.NewSource(*seedFlag)), *scale, *paused)
	if err := game.reseed(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(preset.Width*(*scale), preset.Height*(*scale))
	ebiten.SetWindowTitle("lenia - " + preset.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
