package bootstrap

import (
	"github.com/kbukum/asyncit/config"
)

// Config is the constraint for application configuration types. Any struct
// embedding config.ServiceConfig gets GetServiceConfig through promotion.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
