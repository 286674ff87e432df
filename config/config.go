package config

import (
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafaslide/carddz/models"
)

// Config holds all runtime settings, read from the environment (an optional
// .env file is loaded first).
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	DBPath    string `envconfig:"DB_PATH" default:"carddz.db"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"carddz_dev_secret"`
	GinMode   string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

var (
	DB        *gorm.DB
	JWTSecret []byte
)

func Load() (Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("carddz", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	JWTSecret = []byte(cfg.JWTSecret)
	return cfg, nil
}

// InitDB opens the sqlite database and migrates every model.
func InitDB(cfg Config, log *logrus.Logger) error {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return errors.Wrap(err, "connect database")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Product{},
		&models.CustomizationOption{},
		&models.CustomizationItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.CartSnapshot{},
	)
	if err != nil {
		return errors.Wrap(err, "migrate database")
	}

	DB = db
	log.WithField("db_path", cfg.DBPath).Info("database connected and migrated")
	return nil
}
