// Command sphere renders an animated, specular-lit ASCII sphere in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/sphere/clock"
	"github.com/lixenwraith/sphere/config"
	"github.com/lixenwraith/sphere/core"
	"github.com/lixenwraith/sphere/render"
	"github.com/lixenwraith/sphere/screen"
	"github.com/lixenwraith/sphere/shade"
	"github.com/lixenwraith/sphere/terminal"
)

// Process exit codes
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// options holds everything parsed from the command line
type options struct {
	flags config.Config // Flag values; only changed ones override the file

	configPath  string
	writeConfig string
	fit         bool
	fullScreen  bool
	once        bool
	debug       bool
	help        bool
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the render loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps its error to a process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "ERROR - %v\n", err)
	var cerr *config.ConfigurationError
	if errors.As(err, &cerr) {
		return exitConfig
	}
	return exitRuntime
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Animated ASCII sphere lit by an orbiting point light",
		Long: `sphere - animated ASCII specular sphere

All flags are optional and may be given in any order. A YAML file passed
with --config replaces the defaults; flags given explicitly override it.
Ctrl-C (SIGINT) or SIGTERM clears the frame and exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := setupLogging(opts.debug)
			if logFile != nil {
				defer logFile.Close()
			}

			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			if opts.writeConfig != "" {
				return config.Save(cfg, opts.writeConfig)
			}
			return run(cmd.Context(), cfg, opts, stdout)
		},
	}

	// -h is the height flag, so help is long form only
	cmd.Flags().BoolVar(&opts.help, "help", false, "Displays the manual")

	f := cmd.Flags()
	f.IntVarP(&opts.flags.FPS, "fps", "f", def.FPS, "frames rendered per second (integer > 0)")
	f.IntVarP(&opts.flags.Width, "term-width", "w", def.Width, "width of the screen in characters (integer > 0)")
	f.IntVarP(&opts.flags.Height, "term-height", "h", def.Height, "height of the screen in characters (integer > 0)")
	f.IntVarP(&opts.flags.Radius, "circle-radius", "r", def.Radius, "radius of the sphere in characters (integer > 0)")
	f.StringVarP(&opts.flags.Axis, "light-axis", "a", def.Axis, "axis the light rotates around: x, y or z")
	f.IntVarP(&opts.flags.Offset, "light-offset", "o", def.Offset, "offset of the light along its rotating axis (integer)")
	f.Float64VarP(&opts.flags.Period, "period", "t", def.Period, "seconds the light takes for one revolution (float > 0)")
	f.StringVar(&opts.flags.Glyphs, "glyphs", def.Glyphs, "luminance ramp, lightest glyph first")

	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.writeConfig, "write-config", "", "write the resolved configuration as YAML to a file and exit")
	f.BoolVar(&opts.fit, "fit", false, "size the viewport from the terminal")
	f.BoolVar(&opts.fullScreen, "screen", false, "draw on a full-screen surface instead of the line stream")
	f.BoolVar(&opts.once, "once", false, "print a single frame and exit")
	f.BoolVar(&opts.debug, "debug", false, "write a debug log to "+logDir+"/"+logFileName)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigurationError{Reason: err.Error()}
	})

	return cmd
}

// flagBindings pairs each flag with the config field it overrides
func flagBindings(dst *config.Config, src config.Config) map[string]func() {
	return map[string]func(){
		"fps":           func() { dst.FPS = src.FPS },
		"term-width":    func() { dst.Width = src.Width },
		"term-height":   func() { dst.Height = src.Height },
		"circle-radius": func() { dst.Radius = src.Radius },
		"light-axis":    func() { dst.Axis = src.Axis },
		"light-offset":  func() { dst.Offset = src.Offset },
		"period":        func() { dst.Period = src.Period },
		"glyphs":        func() { dst.Glyphs = src.Glyphs },
	}
}

// resolveConfig layers defaults, the config file, the terminal size (--fit)
// and explicitly set flags, then validates the result
func resolveConfig(flags *pflag.FlagSet, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if opts.fit {
		w, h, ok := terminal.Size(os.Stdout)
		if !ok {
			return cfg, &config.ConfigurationError{Field: "fit", Reason: "requires stdout to be a terminal"}
		}
		cfg.Width = w
		// Stream mode needs one spare line for the cursor below the frame
		cfg.Height = h
		if !opts.fullScreen {
			cfg.Height = h - 1
		}
		if !flags.Changed("circle-radius") {
			cfg.Radius = min(cfg.Radius, config.MaxRadius(cfg.Width, cfg.Height))
		}
	}

	for name, apply := range flagBindings(&cfg, opts.flags) {
		if flags.Changed(name) {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Printf("config: %+v", cfg)
	return cfg, nil
}

// run builds the pipeline for cfg and renders until shutdown
func run(ctx context.Context, cfg config.Config, opts *options, stdout io.Writer) error {
	lm, err := cfg.LuminanceMap()
	if err != nil {
		return err
	}
	sphere, orbit, camera := cfg.Scene()

	buf, err := screen.NewBuffer(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	clk, err := clock.New(cfg.FPS, cfg.Period, clock.NewTimeProvider())
	if err != nil {
		return &config.ConfigurationError{Reason: err.Error()}
	}

	shader := shade.NewShader(lm, camera)

	if opts.once {
		defer buf.Destroy()
		loop, err := render.NewLoop(render.Config{
			Buffer: buf, Shader: shader, Sphere: sphere, Orbit: orbit, Clock: clk,
			Sink: render.SinkFunc(func(terminal.Frame) error { return nil }),
		})
		if err != nil {
			return err
		}
		loop.DrawFrame(0)
		_, err = io.WriteString(stdout, buf.String())
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, fini, err := openSink(stdout, opts.fullScreen)
	if err != nil {
		return err
	}
	defer fini()

	loop, err := render.NewLoop(render.Config{
		Buffer: buf,
		Shader: shader,
		Sphere: sphere,
		Orbit:  orbit,
		Clock:  clk,
		Sink:   sink,
	})
	if err != nil {
		return err
	}

	if cs, ok := sink.(*terminal.CellScreen); ok {
		core.Go(func() { cs.WatchQuit(loop.Stop) })
	}

	return loop.Run(ctx)
}

// openSink initializes the output surface and registers it for crash cleanup
func openSink(stdout io.Writer, fullScreen bool) (render.Sink, func(), error) {
	if fullScreen {
		cs, err := terminal.OpenCellScreen()
		if err != nil {
			return nil, nil, err
		}
		if err := cs.Init(); err != nil {
			return nil, nil, err
		}
		core.SetCrashTerminal(cs)
		return cs, func() {
			cs.Fini()
			core.SetCrashTerminal(nil)
		}, nil
	}

	stream := terminal.NewStream(stdout)
	if err := stream.Init(); err != nil {
		return nil, nil, fmt.Errorf("init output: %w", err)
	}
	core.SetCrashTerminal(stream)
	return stream, func() {
		stream.Fini()
		core.SetCrashTerminal(nil)
	}, nil
}
