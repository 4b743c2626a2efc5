package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML configuration file.
//
//	env: dev
//	server:
//	  port: "8080"
//	  corsAllowOrigins: ["http://localhost:5173"]
//	  shutdownTimeout: 10s
//	log:
//	  level: info
//	  format: json
//	rateLimit:
//	  rps: 20
//	  burst: 40
type fileConfig struct {
	Env    string `yaml:"env"`
	Server struct {
		Port             string        `yaml:"port"`
		CORSAllowOrigins []string      `yaml:"corsAllowOrigins"`
		ShutdownTimeout  time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rateLimit"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}
