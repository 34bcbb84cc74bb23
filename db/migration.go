package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dbmodels "hr-portal-backend/models/db"
)

// AutoMigrateDB создает таблицы и внешние ключи,
// порядок важен: родительские сущности перед дочерними
func AutoMigrateDB(gormDB *gorm.DB) error {
	gormDB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := gormDB.AutoMigrate(&dbmodels.Account{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Account")
	}
	if err := gormDB.AutoMigrate(&dbmodels.RefreshToken{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RefreshToken")
	}
	if err := gormDB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := gormDB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := gormDB.AutoMigrate(&dbmodels.Workflow{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Workflow")
	}
	if err := gormDB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Request")
	}
	if err := gormDB.AutoMigrate(&dbmodels.RequestItem{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestItem")
	}
	if err := gormDB.AutoMigrate(&dbmodels.EmployeeDoc{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmployeeDoc")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
