package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-portal" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MaxOpenConns   int    `default:"5" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns   int    `default:"2" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxIdleSec int    `default:"10" env:"DB_CONN_MAX_IDLE_SEC"`
		ConnMaxLifeSec int    `default:"3600" env:"DB_CONN_MAX_LIFE_SEC"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret           string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec      int    `default:"900" env:"JWT_EXPIRE_IN_SEC"`
		RefreshExpireInDays int    `default:"7" env:"REFRESH_EXPIRE_IN_DAYS"`
	}
	Smtp struct {
		User                string `default:"" env:"SMTP_USER"`
		Password            string `default:"" env:"SMTP_PASSWORD"`
		Host                string `default:"" env:"SMTP_HOST"`
		Port                string `default:"" env:"SMTP_PORT"`
		TLSEnabled          *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailSender         string `default:"" env:"EMAIL_SENDER"`
		DomainForVerifyLink string `default:"http://localhost:8000" env:"DOMAIN_FOR_VERIFY_LINK"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-portal-docs" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
