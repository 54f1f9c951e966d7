package gorm

import (
	"fmt"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the gorm connection described by the app.db properties and
// migrates the todos table. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.schema"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	if err := db.AutoMigrate(&entity.Todo{}); err != nil {
		return nil, fmt.Errorf("fail to migrate todos table: %w", err)
	}

	return db, nil
}
