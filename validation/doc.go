// Package validation checks configuration values and reports failures as
// INVALID_INPUT AppErrors.
//
// Struct tags cover most checks:
//
//	type DemoConfig struct {
//	    Items    []int  `mapstructure:"items" validate:"required,min=1"`
//	    Strategy string `mapstructure:"strategy" validate:"oneof=partition stop_on_first_error"`
//	}
//	err := validation.Validate(cfg)
//
// Field names in messages are mapstructure keys joined by dots, so they match
// the keys in config.yml. Hand-written checks use a Validator:
//
//	v := validation.New()
//	v.Required("name", c.Name).OneOf("environment", c.Environment, envs)
//	return v.Validate()
package validation
