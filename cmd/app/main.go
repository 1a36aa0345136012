package main

import (
	"fmt"
	"log/slog"
	"os"

	"ezwash/cmd"
	httpin "ezwash/internal/adapters/in/http"
	"ezwash/internal/adapters/out/postgres/commissionrepo"
	"ezwash/internal/adapters/out/postgres/orderrepo"
	"ezwash/internal/adapters/out/postgres/reviewrepo"
	"ezwash/internal/adapters/out/postgres/userdirectory"
	"ezwash/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	notifier, err := rabbitmq.NewAmqpNotifier(configs.AmqpURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer notifier.Close()

	directory := userdirectory.NewGormUserDirectory(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, directory, notifier, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:    goDotEnvVariable("AMQP_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDB opens the gorm connection and migrates the tables this service
// owns. The users table belongs to the identity system and is never
// migrated here. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey for the repositories to classify.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
		&commissionrepo.CommissionDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateAcceptTaskCommandHandler(),
		app.CreateMarkPickedUpCommandHandler(),
		app.CreateUpdateStatusCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateSubmitReviewCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetRiderQueueQueryHandler(),
		app.CreateGetAdminOrdersQueryHandler(),
		app.CreateGetPublicReviewsQueryHandler(),
		app.CreateGetAdminReviewsQueryHandler(),
		app.CreateGetOperationsStatsQueryHandler(),
		app.CreateGetAmbassadorEarningsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
