package config

import (
	"os"

	authservice "github.com/ThomasSalomon/chicosAPP-V2/auth/service"

	"github.com/BurntSushi/toml"
)

const serverConfigPath = "configs/server.toml"

type Server struct {
	Host           string             `toml:"host"`
	Port           int                `toml:"port"`
	Debug          bool               `toml:"debug_mode"`
	StorageBackend string             `toml:"storage_backend"`
	SqliteFile     string             `toml:"sqlite_file"`
	CertFile       string             `toml:"cert_file"`
	KeyFile        string             `toml:"key_file"`
	Auth           authservice.Config `toml:"auth"`
}

type Config struct {
	Server Server
}

func New() (Config, error) {
	return NewFromFile(serverConfigPath)
}

func NewFromFile(path string) (Config, error) {
	serverCfg := Server{
		Host:           "localhost",
		Port:           3000,
		StorageBackend: "sqlite",
		SqliteFile:     "academy.sqlite",
	}
	_, err := toml.DecodeFile(path, &serverCfg)
	if err != nil {
		return Config{}, err
	}
	// secrets come from the environment when present
	if token := os.Getenv("JWT_SECRET"); token != "" {
		serverCfg.Auth.Token = token
	}
	if password := os.Getenv("ROOT_PASSWORD"); password != "" {
		serverCfg.Auth.RootPassword = password
	}
	if len(serverCfg.Auth.Rules) == 0 {
		serverCfg.Auth.Rules = authservice.DefaultRules()
	}

	return Config{
		Server: serverCfg,
	}, nil
}
