// Package config loads asyncit configuration with Viper.
//
// Values come from config.yml, then an optional .env file, then the process
// environment. Environment keys are matched against nested keys by splitting
// on underscores, so ASYNCIT_DEMO_FAIL_ABOVE=10 sets demo.fail_above when the
// loader runs WithEnvPrefix("ASYNCIT").
//
//	var cfg config.Config
//	if err := config.LoadConfig("asyncit", &cfg, config.WithEnvPrefix("ASYNCIT")); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
