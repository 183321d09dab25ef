package config

import "fmt"

// Mode switches development-only behavior: debug logging and the manual refresh route
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// Validate rejects modes other than production and development
func (m Mode) Validate() error {
	switch m {
	case ModeProduction, ModeDevelopment:
		return nil
	}
	return fmt.Errorf("unknown mode %q", string(m))
}

// IsDevelopment reports whether development-only behavior is enabled
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

// ApplicationConfig holds settings shared by every command
type ApplicationConfig struct {
	Mode Mode `env:"MODE" envDefault:"production"`
}
