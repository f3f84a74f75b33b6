package fifo

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// A Sequencer drives a controller with a scripted trace of per-cycle
// request tuples, collecting the post-edge outputs of every step.
type Sequencer struct {
	ctrl *Controller
}

// NewSequencer creates a sequencer that drives the given controller.
func NewSequencer(ctrl *Controller) *Sequencer {
	return &Sequencer{ctrl: ctrl}
}

// Run replays the trace, one step per entry, and returns the outputs in
// step order.
func (s *Sequencer) Run(trace []StepInput) []StepOutput {
	outputs := make([]StepOutput, 0, len(trace))

	for _, in := range trace {
		outputs = append(outputs, s.ctrl.Step(in))
	}

	return outputs
}

// ParseTrace reads a trace script. Each non-blank, non-comment line drives
// one cycle:
//
//	-            idle cycle, no requests
//	reset        synchronous reset
//	w <hex>      write request enqueuing the given element
//	r            read request
//	wr <hex>     simultaneous write and read request
//
// Elements are hex strings of exactly `width` bytes (e.g. "1f" for a 1-byte
// element). Lines starting with '#' are comments.
func ParseTrace(r io.Reader, width int) ([]StepInput, error) {
	var trace []StepInput

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		in, err := parseTraceLine(line, width)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", lineNum, err)
		}

		trace = append(trace, in)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return trace, nil
}

func parseTraceLine(line string, width int) (StepInput, error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "-":
		return StepInput{}, nil
	case "reset":
		return StepInput{Reset: true}, nil
	case "r":
		return StepInput{ReadEnable: true}, nil
	case "w", "wr":
		if len(fields) != 2 {
			return StepInput{}, fmt.Errorf(
				"%q requires one data operand", fields[0])
		}

		data, err := parseElement(fields[1], width)
		if err != nil {
			return StepInput{}, err
		}

		return StepInput{
			WriteEnable: true,
			ReadEnable:  fields[0] == "wr",
			DataIn:      data,
		}, nil
	default:
		return StepInput{}, fmt.Errorf("unknown directive %q", fields[0])
	}
}

func parseElement(s string, width int) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid element %q: %w", s, err)
	}

	if len(data) != width {
		return nil, fmt.Errorf("element %q is %d bytes, want %d",
			s, len(data), width)
	}

	return data, nil
}

func hexString(data []byte) string {
	return hex.EncodeToString(data)
}
