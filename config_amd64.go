package bluefruit

// Configuration for Intel Edison with the Bluefruit LE SPI Friend.

const (
	spiDevice = "/dev/spidev5.1"
	irqPin    = 110
	resetPin  = 14
)
