package db

import (
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hr-portal-backend/config"
)

// Connect открывает пул соединений с БД и отдает хендл вызывающему,
// глобального состояния пакет не держит
func Connect(cfg *config.Configuration) (*gorm.DB, error) {
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Name, cfg.Database.Password)
	gormDB, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if *cfg.Database.DebugMode {
		gormDB.Logger = logger.Default.LogMode(logger.Info)
		gormDB = gormDB.Debug()
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка получения пула соединений")
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleSec) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifeSec) * time.Second)

	if *cfg.Database.MigrateOnStart {
		if err = AutoMigrateDB(gormDB); err != nil {
			return nil, err
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return gormDB, nil
}

func PingDB(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
