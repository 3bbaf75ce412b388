package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds CLI defaults, loaded from the environment and an optional
// .env file. Command-line flags override these per invocation.
type Config struct {
	LogLevel   string
	LogFormat  string
	Seed       uint64
	Iterations int
	Population int
	Workers    int
}

// LoadConfig reads CURVEFIT_* environment variables, with a .env file as a
// fallback when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("CURVEFIT_LOG_LEVEL", "info")
	viper.SetDefault("CURVEFIT_LOG_FORMAT", "text")
	viper.SetDefault("CURVEFIT_SEED", 1)
	viper.SetDefault("CURVEFIT_ITERATIONS", 300)
	viper.SetDefault("CURVEFIT_POPULATION", 0)
	viper.SetDefault("CURVEFIT_WORKERS", 1)
	viper.AutomaticEnv()

	cfg := &Config{
		LogLevel:   viper.GetString("CURVEFIT_LOG_LEVEL"),
		LogFormat:  viper.GetString("CURVEFIT_LOG_FORMAT"),
		Seed:       viper.GetUint64("CURVEFIT_SEED"),
		Iterations: viper.GetInt("CURVEFIT_ITERATIONS"),
		Population: viper.GetInt("CURVEFIT_POPULATION"),
		Workers:    viper.GetInt("CURVEFIT_WORKERS"),
	}
	return cfg, nil
}
