package module

import "fmt"

// PortsOf asserts a module's exported ports to T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf for bootstrap code, it panics when the module exports something else
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		var want T
		panic(fmt.Sprintf("module %s exports %T, not %T", m.Name(), m.Ports(), want))
	}
	return p
}
