// Package mem provides the backing store and the message protocol shared by
// the memory components.
package mem

import "fmt"

// Memory capacity units.
const (
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
)

// A Storage keeps the data of the simulated system.
//
// A storage is an abstraction over all types of randomly addressable
// storage, including register files, main memory, and read-only images.
// The storage is managed in units. A unit is only allocated when a Read or
// Write touches it, so a sparsely used storage stays small in host memory.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	s := new(Storage)

	s.unitSize = 4096
	s.capacity = capacity
	s.data = make(map[uint64][]byte)

	return s
}

// Capacity returns the capacity of the storage in bytes.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

func (s *Storage) unit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, fmt.Errorf(
			"accessing address 0x%x beyond the storage capacity 0x%x",
			address, s.capacity)
	}

	baseAddr := address - address%s.unitSize
	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, s.unitSize)
		s.data[baseAddr] = unit
	}

	return unit, nil
}

// Read returns a copy of `length` bytes starting at `address`.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	res := make([]byte, length)

	offset := uint64(0)
	for offset < length {
		currAddr := address + offset

		unit, err := s.unit(currAddr)
		if err != nil {
			return nil, err
		}

		inUnitAddr := currAddr % s.unitSize
		n := copy(res[offset:], unit[inUnitAddr:])
		offset += uint64(n)
	}

	return res, nil
}

// Write stores `data` starting at `address`.
func (s *Storage) Write(address uint64, data []byte) error {
	offset := uint64(0)
	for offset < uint64(len(data)) {
		currAddr := address + offset

		unit, err := s.unit(currAddr)
		if err != nil {
			return err
		}

		inUnitAddr := currAddr % s.unitSize
		n := copy(unit[inUnitAddr:], data[offset:])
		offset += uint64(n)
	}

	return nil
}
