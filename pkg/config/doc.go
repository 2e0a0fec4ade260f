// Package config loads application configuration from environment variables
// into annotated structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), and
// each configuration struct type is parsed at most once and cached for the
// lifetime of the process.
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_HOST,required"`
//		Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Sentinel errors (ErrParsingConfig, ErrNilPointer) can be matched with
// errors.Is. Tests that mutate the process environment should call
// ResetCache between cases.
package config
