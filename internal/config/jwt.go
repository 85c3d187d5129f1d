package config

import "time"

// DefaultSecretKey - небезопасный секрет по умолчанию. Его использование
// в боевом окружении должно сопровождаться предупреждением при старте.
const DefaultSecretKey = "super-secret-key-change-me-in-production"

// JWTConfig содержит настройки токенов доступа и хэширования паролей.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"NOTEKEEP_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"NOTEKEEP_JWT_ACCESS_TOKEN_TTL" env-default:"30m"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"NOTEKEEP_AUTH_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return duration
}

// IsInsecureDefaultSecret сообщает, используется ли секрет по умолчанию.
func (c *JWTConfig) IsInsecureDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}
