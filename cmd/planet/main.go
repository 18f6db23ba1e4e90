// planet - Terminal label sphere
// Spin a globe of labels in your terminal.
//
// Controls:
//
//	Mouse drag   - Rotate (release fast to coast)
//	Scroll       - Zoom in/out
//	Click        - Focus the label under the cursor
//	Double click - Reset rotation and zoom
//	Right click  - Show label details
//	Space        - Pause/resume
//	R            - Reset
//	C            - Toggle back-face culling
//	F            - Focus the next label
//	X            - Remove the selected label
//	G            - Toggle the latitude/longitude grid
//	/            - Search and focus
//	+/-          - Animated zoom
//	?            - Toggle HUD overlay
//	Q/Esc        - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/planet"
	"github.com/taigrr/planet/pkg/render"
	"github.com/taigrr/planet/pkg/sphere"
)

var (
	configPath   = flag.String("config", "", "JSON configuration file applied over the preset")
	presetName   = flag.String("preset", "default", "Configuration preset (default, minimal, deluxe, high-performance, minimalist, display-only)")
	labelsPath   = flag.String("labels", "", "File with one label per line")
	pointsPath   = flag.String("points", "", "GLB/GLTF file whose vertices anchor the labels")
	exportPath   = flag.String("export", "", "Write the label anchors to a GLB file and exit")
	snapshotPath = flag.String("snapshot", "", "Render one frame to a PNG file and exit")
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	cull         = flag.Bool("cull", false, "Hide labels on the far side of the sphere")
	verbose      = flag.Bool("v", false, "Log diagnostics to stderr")
	useTcell     = flag.Bool("tcell", false, "Drive the terminal with tcell instead of ultraviolet")
)

var defaultLabels = []string{
	"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus",
	"Neptune", "Pluto", "Ceres", "Eris", "Makemake", "Haumea", "Moon",
	"Phobos", "Deimos", "Io", "Europa", "Ganymede", "Callisto", "Titan",
	"Enceladus", "Mimas", "Triton", "Charon", "Oberon", "Titania", "Miranda",
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planet - Terminal label sphere\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planet [options] [label ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag   - Rotate\n")
		fmt.Fprintf(os.Stderr, "  Scroll       - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Click        - Focus label\n")
		fmt.Fprintf(os.Stderr, "  Double click - Reset\n")
		fmt.Fprintf(os.Stderr, "  Space        - Pause/resume\n")
		fmt.Fprintf(os.Stderr, "  R            - Reset\n")
		fmt.Fprintf(os.Stderr, "  C            - Toggle culling\n")
		fmt.Fprintf(os.Stderr, "  F            - Focus next label\n")
		fmt.Fprintf(os.Stderr, "  X            - Remove selected label\n")
		fmt.Fprintf(os.Stderr, "  G            - Toggle grid\n")
		fmt.Fprintf(os.Stderr, "  /            - Search\n")
		fmt.Fprintf(os.Stderr, "  +/-          - Zoom\n")
		fmt.Fprintf(os.Stderr, "  ?            - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc        - Quit\n")
	}
	flag.Parse()

	if *targetFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -fps must be positive\n")
		os.Exit(1)
	}
	if !*verbose {
		planet.SetLogger(nil)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	titles, err := loadTitles()
	if err != nil {
		return err
	}

	v := newViewer()
	opts := []planet.Option{planet.WithSink(v.onEvent)}
	if *pointsPath != "" {
		points, err := sphere.LoadGLB(*pointsPath)
		if err != nil {
			return fmt.Errorf("load points: %w", err)
		}
		opts = append(opts, planet.WithLayout(sphere.CustomLayout{Points: points}))
	}

	p, err := planet.New(cfg, opts...)
	if err != nil {
		return err
	}
	p.LoadTitles(titles...)
	v.planet = p

	switch {
	case *exportPath != "":
		return exportAnchors(p, *exportPath)
	case *snapshotPath != "":
		return snapshot(p, *snapshotPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var screen display
	if *useTcell {
		screen, err = openTcell()
	} else {
		screen, err = openTerminal()
	}
	if err != nil {
		return err
	}
	return v.run(ctx, screen, *targetFPS)
}

func loadConfig() (config.Config, error) {
	cfg, ok := config.Preset(*presetName)
	if !ok {
		return config.Config{}, fmt.Errorf("unknown preset %q", *presetName)
	}
	// Values from the config file still win.
	cfg.HitTesting = terminalHitTesting(cfg.HitTesting)
	if *configPath != "" {
		var err error
		cfg, err = config.LoadOnto(cfg, *configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if *cull {
		cfg.DepthEffects.BackfaceCulling = true
	}
	return cfg, nil
}

// terminalHitTesting sizes hit boxes in terminal pixels, where a cell is one
// pixel wide and two tall. The touch-sized defaults would cover half the
// sphere.
func terminalHitTesting(h config.HitTesting) config.HitTesting {
	h.MinWidth = 3
	h.MinHeight = 3
	h.Expansion = 1
	return h
}

func loadTitles() ([]string, error) {
	titles := flag.Args()
	if *labelsPath != "" {
		data, err := os.ReadFile(*labelsPath)
		if err != nil {
			return nil, fmt.Errorf("read labels: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				titles = append(titles, line)
			}
		}
	}
	if len(titles) == 0 {
		titles = defaultLabels
	}
	return titles, nil
}

func exportAnchors(p *planet.Planet, path string) error {
	labels := p.Labels()
	points := make([]math3d.Vec3, len(labels))
	for i, l := range labels {
		points[i] = l.Position
	}
	if err := sphere.SaveGLB(path, points); err != nil {
		return fmt.Errorf("export anchors: %w", err)
	}

	r := p.DistributionReport()
	fmt.Printf("Wrote %d anchors to %s (min distance %.4f, efficiency %.1f%%)\n",
		r.Count, path, r.MinDistance, r.Efficiency*100)
	return nil
}

func snapshot(p *planet.Planet, path string) error {
	const cols, rows = 120, 40

	scene := render.NewScene()
	scene.Titles = false
	p.Resize(scene.Resize(cols, rows))
	scene.Render(p)
	if err := scene.Framebuffer().SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	fmt.Printf("Saved %dx%d snapshot to %s\n", scene.Framebuffer().Width, scene.Framebuffer().Height, path)
	return nil
}
