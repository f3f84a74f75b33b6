package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/clockmem/datarecording"
	"github.com/sarchlab/clockmem/monitoring"
	"github.com/sarchlab/clockmem/sim"
)

// Builder can build a Simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring disables the monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number of the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the name of the recording database file, without
// the extension.
func (b Builder) WithOutputFileName(name string) Builder {
	b.outputFileName = name
	return b
}

// Build creates a Simulation.
func (b Builder) Build() *Simulation {
	s := &Simulation{
		components: make(map[string]sim.Component),
		ports:      make(map[string]sim.Port),
	}

	s.engine = sim.NewSerialEngine()

	outputFileName := b.outputFileName
	if outputFileName == "" {
		outputFileName = "clockmem_sim_" + xid.New().String()
	}

	s.dataRecorder = datarecording.NewDataRecorder(outputFileName)

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort != 0 {
			s.monitor = s.monitor.WithPortNumber(b.monitorPort)
		}

		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
