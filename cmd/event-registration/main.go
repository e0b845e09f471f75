package main

import (
	"fmt"
	"os"

	"event-registration-backend/cmd/event-registration/apis"
	"event-registration-backend/cmd/event-registration/database"
	"event-registration-backend/cmd/event-registration/notify"
	"event-registration-backend/cmd/event-registration/repository"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	ListenAddr     string `envconfig:"LISTEN_ADDR" default:":8080"`
	DBHost         string `envconfig:"DB_HOST" required:"true"`
	DBPort         int    `envconfig:"DB_PORT" required:"true"`
	DBUser         string `envconfig:"DB_USER" required:"true"`
	DBPassword     string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	SMTPHost       string `envconfig:"SMTP_HOST" required:"true"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser       string `envconfig:"SMTP_USER"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
	MailFrom       string `envconfig:"MAIL_FROM" required:"true"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	// Local development convenience, ignored when no .env file exists.
	_ = godotenv.Load()

	var cfg EnvCfg
	err = envconfig.Process("EVENT_REG", &cfg)
	if err != nil {
		panic(err)
	}

	migrateDSN := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	err = database.RunMigrations(migrateDSN, cfg.MigrationsPath)
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open(
		postgres.Open(
			fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
			),
		),
	)

	if err != nil {
		panic(err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	rootg := e.Group("")
	v1g := rootg.Group("/api/v1")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	eventConfigRepo := repository.NewEventConfigRepo(db)
	registrationRepo := repository.NewRegistrationRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	mailer := notify.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
	)
	dispatcher := notify.NewDispatcher(mailer, settingsRepo)

	apis.
		NewRegistrationAPI(eventConfigRepo, registrationRepo, dispatcher).
		Setup(v1g)

	apis.
		NewAdminAPI(eventConfigRepo, registrationRepo, settingsRepo).
		Setup(v1g)

	e.Start(cfg.ListenAddr)

}
