package database

import (
	"fmt"
	"strconv"

	"eldercare_booking/config"
	"eldercare_booking/logger"
	"eldercare_booking/model"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.ConfigDefault("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Ho_Chi_Minh",
		config.ConfigDefault("DB_HOST", "localhost"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	// TranslateError để store nhận gorm.ErrDuplicatedKey khi trùng mã đơn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}
	logger.Success("Connection Opened to Database")

	err = db.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.OrderStatusEvent{},
		&model.Booking{},
		&model.OTP{},
		&model.Activity{},
		&model.OrderSequence{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}
	logger.Success("Database Migrated")

	SeedData(db)
	DB = db
	return db, nil
}
