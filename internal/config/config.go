package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// 主配置结构 - 简化命名
type Config struct {
	App       App       `yaml:"app"`
	Server    Server    `yaml:"server"`
	Shortener Shortener `yaml:"shortener"`
	Storage   Storage   `yaml:"storage"`
	Sink      Sink      `yaml:"log_sink"`
	RateLimit Limit     `yaml:"rate_limit"`
}

// 应用配置
type App struct {
	Name    string `yaml:"name"`
	Mode    string `yaml:"mode"`
	Version string `yaml:"version"`
}

// 服务器配置
type Server struct {
	Port         int `yaml:"port"`
	ReadTimeout  int `yaml:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout"`
}

// 短链配置
type Shortener struct {
	BaseURL                string `yaml:"base_url"`
	DefaultValidityMinutes int    `yaml:"default_validity_minutes"`
}

// 存储配置，Backend 取值: sqlite | mysql | redis | memory
type Storage struct {
	Backend string `yaml:"backend"`
	Key     string `yaml:"key"`
	SQLite  SQLite `yaml:"sqlite"`
	MySQL   DB     `yaml:"mysql"`
	Redis   Cache  `yaml:"redis"`
}

// SQLite 配置
type SQLite struct {
	Path string `yaml:"path"`
}

// 数据库配置
type DB struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// 缓存配置（Redis）
type Cache struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// 远端日志服务配置
type Sink struct {
	Endpoint string `yaml:"endpoint"`
	Stack    string `yaml:"stack"`
}

// 限流配置
type Limit struct {
	Enabled   bool     `yaml:"enabled"`
	Requests  int64    `yaml:"requests_per_minute"`
	Burst     int64    `yaml:"burst"`
	SkipPaths []string `yaml:"skip_paths"`
}

// 加载配置
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
