// Command demo2d runs a small 2D particle simulation headlessly,
// recording every frame to disk when -out is set and printing FPS
// stats. It
// exists to exercise the verlet engine end to end: config loading,
// the simulation loop, the binary recorder, and the frame-rate
// controller together, the way a real host embedding this engine
// would wire them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/physkit/verletsim/util"
	"github.com/physkit/verletsim/util/logger"
	"github.com/physkit/verletsim/vecn"
	"github.com/physkit/verletsim/verlet"
	"github.com/physkit/verletsim/verlet/config"
	"github.com/physkit/verletsim/verlet/recorder"
)

func main() {
	configPath := flag.String("config", "", "optional YAML scene config to load")
	frames := flag.Int("frames", 300, "number of frames to simulate")
	fps := flag.Uint("fps", 60, "target frames per second")
	outPrefix := flag.String("out", "", "if set, record each frame under this file prefix")
	flag.Parse()

	log := logger.New("DEMO2D", nil)
	log.AddWriter(logger.NewConsole(true))
	log.SetLevel(logger.INFO)

	w := verlet.NewWorld[vecn.Vector2]()
	w.SetGravityScalar(50).
		SetWorldBounds(vecn.NewVector2(0, 0), vecn.NewVector2(800, 600)).
		SetDrag(0.995)

	if *configPath != "" {
		doc, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "demo2d: loading config:", err)
			os.Exit(1)
		}
		config.Apply[vecn.Vector2](doc, w)
		log.Info("loaded scene config from %s", *configPath)
	}

	seedParticles(w)

	var rec *recorder.Recorder[vecn.Vector2]
	if *outPrefix != "" {
		rec = recorder.New[vecn.Vector2](*outPrefix)
	}

	rater := util.NewFrameRater(*fps)
	for frame := 0; frame < *frames; frame++ {
		rater.Start()
		w.Update(frame)
		if rec != nil {
			if err := rec.Record(w, frame); err != nil {
				log.Error("recording frame %d: %v", frame, err)
			}
		}
		if measured, potential, ok := rater.FPS(0); ok {
			log.Info("frame %d: %d particles, %.1f fps (%.1f potential)", frame, w.NumParticles(), measured, potential)
		}
		rater.Wait()
	}

	log.Info("simulated %d frames", *frames)
}

func seedParticles(w *verlet.World[vecn.Vector2]) {
	anchor := w.MakeParticle(vecn.NewVector2(400, 50), 1, 1)
	anchor.MakeFixed()

	prev := anchor
	for i := 1; i <= 8; i++ {
		p := w.MakeParticle(vecn.NewVector2(400, float32(50+i*20)), 1, 1)
		w.MakeSpring(prev, p, 0.8, 20)
		prev = p
	}

	w.MakeParticle(vecn.NewVector2(200, 300), 2, 1).SetRadius(15)
	w.MakeParticle(vecn.NewVector2(220, 300), 2, 1).SetRadius(15)
	w.EnableCollision()
}
