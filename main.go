package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-glider/utils"
)

const defaultConfigFile = "config.json"

func main() {
	var (
		configFile = flag.String("config", defaultConfigFile, "path to a JSON config file")
		size       = flag.Int("size", 0, "grid edge length (overrides config)")
		iterations = flag.Int("iterations", 0, "number of generations to run (overrides config)")
		parallel   = flag.Bool("parallel", false, "compute generations on all CPUs")
		noPool     = flag.Bool("no-pool", false, "disable grid storage reuse")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configFile)
		config = utils.DefaultConfig()
	}
	if *size != 0 {
		config.Size = *size
	}
	if *iterations != 0 {
		config.Iterations = *iterations
	}
	if *parallel {
		config.UseParallel = true
	}
	if *noPool {
		config.UseMemoryPool = false
	}

	sim, err := initializeGame(config, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generations, err := sim.run(ctx)
	if ctx.Err() != nil {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	sim.displayStats(generations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
