package datarecording

import (
	"github.com/sarchlab/clockmem/mem/fifo"
	"github.com/sarchlab/clockmem/sim"
)

// StepLogger is a hook that records every FIFO controller step into a data
// recorder. Register it on a fifo.Controller with AcceptHook.
type StepLogger struct {
	recorder DataRecorder
	table    string
}

// NewStepLogger creates a StepLogger writing into the given recorder. The
// table is created immediately.
func NewStepLogger(recorder DataRecorder, tableName string) *StepLogger {
	recorder.CreateTable(tableName, fifo.StepTrace{})

	return &StepLogger{
		recorder: recorder,
		table:    tableName,
	}
}

// Func records the step trace carried by a FIFO step hook.
func (l *StepLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != fifo.HookPosStep {
		return
	}

	l.recorder.InsertData(l.table, ctx.Item.(fifo.StepTrace))
}
