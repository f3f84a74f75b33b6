// Package simulation bundles the parts that every simulation needs: an
// engine, a data recorder, and optionally a monitor.
package simulation

import (
	"log"

	"github.com/sarchlab/clockmem/datarecording"
	"github.com/sarchlab/clockmem/monitoring"
	"github.com/sarchlab/clockmem/sim"
)

// Simulation provides the infrastructure for all the components.
type Simulation struct {
	engine       sim.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	components map[string]sim.Component
	ports      map[string]sim.Port
}

// GetEngine returns the event-driven simulation engine used.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used. It returns nil if monitoring is
// disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation. All the ports
// of the component are also registered.
func (s *Simulation) RegisterComponent(c sim.Component) {
	name := c.Name()
	if _, ok := s.components[name]; ok {
		log.Panicf("component %s already registered", name)
	}

	s.components[name] = c

	for _, p := range c.Ports() {
		portName := p.Name()
		if _, ok := s.ports[portName]; ok {
			log.Panicf("port %s already registered", portName)
		}

		s.ports[portName] = p
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// GetComponentByName returns a registered component by its name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	c, ok := s.components[name]
	if !ok {
		log.Panicf("component %s not found", name)
	}

	return c
}

// GetPortByName returns a registered port by its name.
func (s *Simulation) GetPortByName(name string) sim.Port {
	p, ok := s.ports[name]
	if !ok {
		log.Panicf("port %s not found", name)
	}

	return p
}

// Terminate flushes the recorded data and releases the resources used by the
// simulation.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
