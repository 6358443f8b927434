package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Hotel is the regional hotel whose feeds and imager are used (com, com.br, es, ...).
	Hotel string `mapstructure:"hotel" default:"com"`
	// Emulator specifies the emulator whose clothing registry is read (arcturus, plusemu, comet).
	Emulator string `mapstructure:"emulator" default:"arcturus"`
}

const (
	EmulatorArcturus = "arcturus"
	EmulatorPlus     = "plusemu"
	EmulatorComet    = "comet"
)

// Hotels lists the regional domains that publish figure data.
var Hotels = []string{"com", "com.br", "com.tr", "de", "es", "fi", "fr", "it", "nl"}

// IsValidEmulator checks if the configured emulator is valid.
func (c Config) IsValidEmulator() bool {
	switch c.Emulator {
	case EmulatorArcturus, EmulatorPlus, EmulatorComet:
		return true
	default:
		return false
	}
}

// IsValidHotel checks if the configured hotel is a known regional domain.
func (c Config) IsValidHotel() bool {
	h := strings.ToLower(strings.TrimSpace(c.Hotel))
	for _, known := range Hotels {
		if h == known {
			return true
		}
	}
	return false
}

// Origin returns the https origin of the configured hotel, defaulting to habbo.com.
func (c Config) Origin() string {
	if !c.IsValidHotel() {
		return "https://www.habbo.com"
	}
	return "https://www.habbo." + strings.ToLower(strings.TrimSpace(c.Hotel))
}
