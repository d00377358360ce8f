package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	SecretKey string `env:"SECRET_KEY,required"`

	PaytmMID    string `env:"PAYTM_MID" envDefault:"not-found"`
	PaytmAPIKey string `env:"PAYTM_API_KEY" envDefault:"not-found"`

	// sqlite is the default; mysql reuses the DSN fields below.
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath   string `env:"DB_PATH" envDefault:"old_sell_app.db"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/path/to.sock)
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
