package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"git.c3pb.de/farhaven/planetarium/solar"
	"git.c3pb.de/farhaven/planetarium/ui"
)

func main() {
	width := flag.Int("width", 1024, "window width")
	height := flag.Int("height", 768, "window height")
	seed := flag.Int64("seed", 0, "seed for the orbital phases, 0 picks one from the clock")
	timescale := flag.Float64("timescale", 1, "simulation speed multiplier")
	resources := flag.String("resources", "resources", "directory holding the body textures")
	font := flag.String("font", "font.ttf", "HUD font")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf(`orbital phase seed %d`, *seed)

	sys, shapes := solar.Generate(solar.DefaultCatalog(), rand.New(rand.NewSource(*seed)))

	ctx := ui.NewDrawContext(ui.Config{
		Width:     *width,
		Height:    *height,
		Resources: *resources,
		Font:      *font,
		TimeScale: *timescale,
	}, sys, shapes)

	log.Println(`waiting for ui to shut down`)
	ctx.WaitForShutdown()
}
