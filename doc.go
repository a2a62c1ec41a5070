// Package bloom renders the bloom activity indicator: a 3×3 grid whose cells
// light up and fade in staggered groups while something runs in the
// background.
//
// # Engine
//
// One [Engine] owns one [Scheduler], the shared frame loop. Every instance
// created through the engine is registered with that scheduler, which keeps a
// single frame request pending on its [FrameDriver] while any instance is
// alive and stops once the last one is destroyed:
//
//	scene := bloom.NewScene()
//	engine := bloom.NewEngine(bloom.EngineConfig{
//		Driver: scene,
//		Gamut:  bloom.DetectGamut(),
//	})
//	inst, err := engine.Create(scene.Root(), bloom.Named("loading", "cyan"))
//	if err != nil {
//		return err
//	}
//	defer inst.Destroy()
//
// # Frame computation
//
// What a grid shows is a pure function of elapsed time and its [Config]; see
// [Interpolator.Compute] and [CycleLength]. The result is written to the
// host through [Grid.SetCell], so any [Host] (a scene [Node], a terminal
// panel, a recorder in tests) can display it.
//
// # Scene graph
//
// The package also carries the small Ebitengine scene graph used by the
// gallery and the playground: [Node], [Scene], [Run], brightness filters and
// gween-backed tweens for interface feedback.
package bloom
