package bluefruit

// Configuration for Raspberry Pi Zero W with the Bluefruit LE SPI Friend.

const (
	spiDevice = "/dev/spidev0.0"
	irqPin    = 22
	resetPin  = 4
)
