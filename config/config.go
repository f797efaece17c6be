package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
	OTP     OTPConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AllowedOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig points at the S3-compatible bucket holding uploaded blog
// images. Endpoint is optional; when empty the AWS default resolution applies.
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

type OTPConfig struct {
	CodeTTL         time.Duration
	VerifiedTTL     time.Duration
	MaxAttempts     int
	MaxCodesPerHour int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	codeTTL, err := time.ParseDuration(viper.GetString("OTP_CODE_TTL"))
	if err != nil {
		codeTTL = 5 * time.Minute
	}

	verifiedTTL, err := time.ParseDuration(viper.GetString("OTP_VERIFIED_TTL"))
	if err != nil {
		verifiedTTL = 15 * time.Minute
	}

	maxAttempts := viper.GetInt("OTP_MAX_ATTEMPTS")
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	maxCodesPerHour := viper.GetInt("OTP_MAX_CODES_PER_HOUR")
	if maxCodesPerHour <= 0 {
		maxCodesPerHour = 3
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			AllowedOrigin: viper.GetString("APP_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
			Region:    viper.GetString("STORAGE_REGION"),
			Bucket:    viper.GetString("STORAGE_BUCKET"),
			AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
			PublicURL: viper.GetString("STORAGE_PUBLIC_URL"),
		},
		OTP: OTPConfig{
			CodeTTL:         codeTTL,
			VerifiedTTL:     verifiedTTL,
			MaxAttempts:     maxAttempts,
			MaxCodesPerHour: maxCodesPerHour,
		},
	}

	return config, nil
}
