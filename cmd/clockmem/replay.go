package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/clockmem/datarecording"
	"github.com/sarchlab/clockmem/mem/fifo"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a scripted request trace through a FIFO controller",
	Long: `Replay drives a FIFO controller with a trace script, one line per
cycle, and prints the post-edge outputs of every step. Supported directives:

	-            idle cycle
	reset        synchronous reset
	w <hex>      write request
	r            read request
	wr <hex>     simultaneous write and read request`,
	Run: runReplay,
}

var (
	replayTraceFile string
	replayCapacity  int
	replayWidth     int
	replayRecord    bool
	replayOutput    string
)

func init() {
	replayCmd.Flags().StringVar(&replayTraceFile, "trace", "",
		"path of the trace script to replay")
	replayCmd.Flags().IntVar(&replayCapacity, "capacity",
		envInt("CLOCKMEM_FIFO_CAPACITY", 16),
		"number of FIFO slots")
	replayCmd.Flags().IntVar(&replayWidth, "width",
		envInt("CLOCKMEM_FIFO_WIDTH", 1),
		"element width in bytes")
	replayCmd.Flags().BoolVar(&replayRecord, "record", false,
		"record every step into an SQLite database")
	replayCmd.Flags().StringVar(&replayOutput, "output", "",
		"name of the recording database, without extension")

	err := replayCmd.MarkFlagRequired("trace")
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(replayCmd)
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}

	return v
}

func runReplay(_ *cobra.Command, _ []string) {
	file, err := os.Open(replayTraceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open trace: %s\n", err)
		atexit.Exit(1)
	}
	defer file.Close()

	trace, err := fifo.ParseTrace(file, replayWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse trace: %s\n", err)
		atexit.Exit(1)
	}

	ctrl := fifo.NewController("Replay.FIFO", replayCapacity, replayWidth)

	if replayRecord {
		recorder := datarecording.NewDataRecorder(replayOutput)
		defer recorder.Close()

		logger := datarecording.NewStepLogger(recorder, "fifo_steps")
		ctrl.AcceptHook(logger)
	}

	outputs := fifo.NewSequencer(ctrl).Run(trace)

	for i, out := range outputs {
		fmt.Printf("step %4d: data_out=%x full=%-5v empty=%-5v count=%d\n",
			i, out.DataOut, out.Full, out.Empty, out.Count)
	}
}
