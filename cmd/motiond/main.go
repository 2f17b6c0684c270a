package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"photoframe/internal/logging"
	"photoframe/internal/motion"
	"photoframe/internal/screen"
	"photoframe/internal/startup"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := startup.DaemonFromEnv()
	if err != nil {
		logging.Fatal("configuration error: %v", err)
	}

	root := &cobra.Command{
		Use:          "motiond [status-file]",
		Short:        "PIR motion daemon driving display power",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfg.GPIOPin, "gpio-pin", cfg.GPIOPin, "GPIO pin the PIR OUT line is wired to")
	flags.IntVar(&cfg.QuietSecs, "quiet-secs", cfg.QuietSecs, "seconds without motion before the display blanks")
	flags.StringVar(&cfg.Display, "display", cfg.Display, "X11 display to control")
	flags.StringVar(&cfg.Xauthority, "xauthority", cfg.Xauthority, "Xauthority file for xset")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *startup.DaemonConfig, args []string) error {
	if err := cfg.Finalize(args); err != nil {
		return err
	}

	quiet := cfg.QuietPeriod()
	if quiet < motion.MinQuietPeriod {
		logging.Warn("quiet period %v below minimum, clamping to %v", quiet, motion.MinQuietPeriod)
		quiet = motion.MinQuietPeriod
	}

	logging.Info("motiond starting: pin=%s quiet=%v status=%s",
		cfg.GPIOPin, quiet, cfg.StatusFile)

	sensor, err := motion.NewGPIOSensor(cfg.GPIOPin)
	if err != nil {
		return err
	}
	defer sensor.Close()

	state := screen.NewStateFile(cfg.StatusFile)
	controller := screen.NewController(state)

	// The daemon owns blanking from here on; disable the X timers and
	// start from a known-on state.
	controller.DisableBlanking()
	if err := controller.On(); err != nil {
		logging.Warn("initial state write: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := motion.NewWatcher(sensor, controller, quiet)
	err = watcher.Run(ctx)
	logging.Info("motiond stopped")
	return err
}
