package main

import (
	"fmt"
	"log"

	"github.com/san-kum/trajsim/internal/ballistic"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/spf13/cobra"
)

// Launch flags shared by every command that simulates a trajectory.
var (
	velocity   float64
	angle      float64
	gravity    float64
	samples    int
	configFile string
	preset     string
)

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&velocity, "velocity", ballistic.DefaultVelocity, "initial speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", ballistic.DefaultAngle, "launch angle (degrees above horizontal)")
	cmd.Flags().Float64Var(&gravity, "gravity", ballistic.DefaultGravity, "gravitational acceleration (m/s²)")
	cmd.Flags().IntVar(&samples, "samples", ballistic.DefaultSamples, "number of trajectory samples")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset launch")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Launch = *p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("velocity") {
		cfg.Launch.Velocity = velocity
	}
	if flags.Changed("angle") {
		cfg.Launch.Angle = angle
	}
	if flags.Changed("gravity") {
		cfg.Launch.Gravity = gravity
	}
	if flags.Changed("samples") {
		cfg.Launch.Samples = samples
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Display.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func simulateFromFlags(cmd *cobra.Command) (*ballistic.Trajectory, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	traj, err := ballistic.SimulateInput(cfg.Input())
	if err != nil {
		return nil, nil, err
	}
	log.Printf("simulated %s: flight %.3fs range %.2fm apex %.2fm",
		traj.Input(), traj.FlightTime(), traj.Final().X, traj.Apex().Y)
	return traj, cfg, nil
}
