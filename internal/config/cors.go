package config

// CORSConfig содержит настройки CORS для браузерных клиентов.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"NOTEKEEP_CORS_ALLOW_ORIGINS" env-default:"http://localhost:3000"`
}
