package configs

import (
	"github.com/waritsara2543/food-ordering/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Session{}, &entity.Cart{}, &entity.CartItem{},
	)
}
