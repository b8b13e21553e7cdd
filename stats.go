package bluefruit

// Statistics tracks the frames and bytes exchanged with the module.
type Statistics struct {
	Packets struct {
		Sent     int
		Received int
	}
	Bytes struct {
		Sent     int
		Received int
	}
}
