package initializers

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/config"
	"hr-portal-backend/db"
	"hr-portal-backend/fiberlog"
	accounthandler "hr-portal-backend/lib/account"
	accountstore "hr-portal-backend/lib/account/store"
	authhandler "hr-portal-backend/lib/auth"
	departmenthandler "hr-portal-backend/lib/department"
	departmentstore "hr-portal-backend/lib/department/store"
	employeehandler "hr-portal-backend/lib/employee"
	employeestore "hr-portal-backend/lib/employee/store"
	xlsexport "hr-portal-backend/lib/export/xls"
	filestorage "hr-portal-backend/lib/file-storage"
	docstore "hr-portal-backend/lib/file-storage/store"
	requesthandler "hr-portal-backend/lib/request"
	requeststore "hr-portal-backend/lib/request/store"
	"hr-portal-backend/lib/smtp"
	tokenhandler "hr-portal-backend/lib/token"
	tokenstore "hr-portal-backend/lib/token/store"
	workflowhandler "hr-portal-backend/lib/workflow"
	workflowstore "hr-portal-backend/lib/workflow/store"
	"hr-portal-backend/middleware"
	s3client "hr-portal-backend/s3"
)

// Services - собранный граф зависимостей приложения,
// все связи явные, глобальных синглтонов нет
type Services struct {
	LoggerConfig *fiberlog.Config
	Authorizer   *middleware.Authorizer
	Auth         authhandler.Provider
	Accounts     accounthandler.Provider
	Departments  departmenthandler.Provider
	Employees    employeehandler.Provider
	Workflows    workflowhandler.Provider
	Requests     requesthandler.Provider
	Docs         filestorage.Provider
	Export       xlsexport.Provider
}

func InitAllServices(ctx context.Context) (*Services, error) {
	loggerConfig := InitLogger()
	config.InitConfig()

	gormDB, err := db.Connect(config.Conf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подключения к БД")
	}

	storage, err := s3client.NewClient(config.Conf)
	if err != nil {
		return nil, err
	}
	if err = storage.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("ошибка подготовки bucket в s3")
	}

	mailer := smtp.NewSender(config.Conf)

	accountStore := accountstore.NewInstance(gormDB)
	tokenStore := tokenstore.NewInstance(gormDB)
	departmentStore := departmentstore.NewInstance(gormDB)
	employeeStore := employeestore.NewInstance(gormDB)
	workflowStore := workflowstore.NewInstance(gormDB)
	requestStore := requeststore.NewInstance(gormDB)
	docStore := docstore.NewInstance(gormDB)

	tokens := tokenhandler.NewHandler(tokenStore)

	return &Services{
		LoggerConfig: loggerConfig,
		Authorizer:   middleware.NewAuthorizer(accountStore, tokens),
		Auth:         authhandler.NewHandler(accountStore, tokens, mailer),
		Accounts:     accounthandler.NewHandler(accountStore),
		Departments:  departmenthandler.NewHandler(departmentStore, employeeStore),
		Employees:    employeehandler.NewHandler(employeeStore, accountStore, departmentStore, workflowStore),
		Workflows:    workflowhandler.NewHandler(workflowStore, employeeStore),
		Requests:     requesthandler.NewHandler(requestStore, employeeStore),
		Docs:         filestorage.NewHandler(docStore, employeeStore, storage),
		Export:       xlsexport.NewHandler(employeeStore),
	}, nil
}
