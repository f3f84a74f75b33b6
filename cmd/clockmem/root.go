package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:   "clockmem",
	Short: "Cycle-level simulation of clocked memory primitives",
	Long: `Clockmem simulates clocked memory primitives at cycle level. It
models a synchronous FIFO controller together with RAM and ROM blocks, either
replaying scripted request traces or running message-driven simulations.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}

func init() {
	// Environment defaults, e.g. CLOCKMEM_MONITOR_PORT. Missing file is fine.
	_ = godotenv.Load()
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
