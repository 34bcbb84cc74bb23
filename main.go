package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/config"
	apiv1 "hr-portal-backend/controllers/v1"
	"hr-portal-backend/fiberlog"
	"hr-portal-backend/initializers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, err := initializers.InitAllServices(ctx)
	if err != nil {
		log.WithError(err).Fatal("ошибка инициализации сервисов")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*services.LoggerConfig))
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	apiv1.InitAuthApiRouters(app, services.Authorizer, services.Auth)
	apiv1.InitAccountApiRouters(app, services.Authorizer, services.Accounts)
	apiv1.InitDepartmentApiRouters(app, services.Authorizer, services.Departments)
	apiv1.InitEmployeeApiRouters(app, services.Authorizer, services.Employees, services.Docs, services.Export)
	apiv1.InitWorkflowApiRouters(app, services.Authorizer, services.Workflows)
	apiv1.InitRequestApiRouters(app, services.Authorizer, services.Requests)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
