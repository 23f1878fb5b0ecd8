package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MongoConnString string `env:"MONGODB_CONNSTRING"`
	JWTSign         string `env:"SIGN"`
	ListenAddr      string `env:"LISTEN_ADDR" envDefault:":80"`
	PapersDir       string `env:"PAPERS_DIR" envDefault:"./papers"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse configuration from environment: %v", err)
	}
	return cfg, nil
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
