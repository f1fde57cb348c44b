package native

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/childebao/j2objc"
	"github.com/childebao/j2objc/errors"
)

// WazeroMemory wraps wazero linear memory to implement j2objc.Memory,
// letting arrays move directly in and out of a running WASM instance.
type WazeroMemory struct {
	mem api.Memory
}

// WrapWazero adapts a wazero memory export.
func WrapWazero(mem api.Memory) *WazeroMemory {
	return &WazeroMemory{mem: mem}
}

func (m *WazeroMemory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.RegionOutOfRange(offset, length, m.Size())
	}
	return data, nil
}

func (m *WazeroMemory) Write(offset uint32, data []byte) error {
	if ok := m.mem.Write(offset, data); !ok {
		return errors.RegionOutOfRange(offset, uint32(len(data)), m.Size())
	}
	return nil
}

func (m *WazeroMemory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

// Compile-time check that WazeroMemory implements j2objc.Memory
var _ j2objc.Memory = (*WazeroMemory)(nil)
