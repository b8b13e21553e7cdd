package bluefruit

// Transport moves fixed-size SDEP frames to and from the module.
// Writes and reads are frame-atomic: the bus is owned by a single
// exchange at a time and frames are never interleaved.
type Transport interface {
	WriteFrame(f Frame) error
	ReadFrame(f *Frame) error
}

// ReadySignal is the module's "response data available" line.
type ReadySignal interface {
	Asserted() (bool, error)
}

// Resetter is implemented by transports that control the module's
// hardware reset line.
type Resetter interface {
	Reset() error
}
