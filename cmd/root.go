package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusim/rrsim/api"
	sim "github.com/cpusim/rrsim/sim"
)

var (
	// CLI flags for the simulation run
	scenarioPath string // Path to a YAML scenario file; empty means the built-in dataset
	timeSlice    uint32 // Quantum override in ticks; 0 keeps the scenario's value
	logLevel     string // Log verbosity level
	showGantt    bool   // Render the dispatch Gantt chart after the run
	showSummary  bool   // Render the bordered summary table and metrics block

	// CLI flags for the HTTP server
	servePort int // Port the scheduling API listens on
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rrsim",
	Short: "Round-robin CPU scheduling simulator",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a round-robin simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenario := builtinScenario()
		if scenarioPath != "" {
			scenario, err = LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario %s: %v", scenarioPath, err)
			}
		}
		if timeSlice > 0 {
			scenario.TimeSlice = timeSlice
		}

		logrus.Infof("Starting simulation with %d processes, time slice %d",
			len(scenario.Processes), scenario.TimeSlice)

		s, err := sim.NewSimulator(scenario.Processes, scenario.TimeSlice)
		if err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		results := s.Run()

		if err := sim.WriteTable(os.Stdout, results); err != nil {
			logrus.Fatalf("unable to render results: %v", err)
		}
		if showGantt {
			sim.WriteGantt(os.Stdout, s.Trace())
		}
		if showSummary {
			metrics := sim.BuildMetrics(results, s.Trace())
			sim.WriteSummary(os.Stdout, results, metrics)
			metrics.Print()
		}

		logrus.Info("Simulation complete.")
	},
}

// demoCmd runs the built-in dataset and verifies the engine against the
// known-good completion times, then prints the results table.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in dataset and verify engine output",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunDemo(os.Stdout); err != nil {
			logrus.Fatalf("demo failed: %v", err)
		}
	},
}

// serveCmd exposes the engine over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		srv := api.NewServer()
		if err := srv.Listen(servePort); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// builtinScenario wraps the reference dataset as a Scenario.
func builtinScenario() *Scenario {
	return &Scenario{
		TimeSlice: sim.CanonicalTimeSlice,
		Processes: sim.CanonicalProcesses(),
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (default: built-in dataset)")
	runCmd.Flags().Uint32Var(&timeSlice, "time-slice", 0, "Override the scenario's time slice (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print the dispatch Gantt chart")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print the summary table and aggregate metrics")

	serveCmd.Flags().IntVar(&servePort, "port", 9095, "Port for the scheduling API")
	serveCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
}
