package sql

import (
	"database/sql"
	"fmt"

	"todo-api/pkg/resource"

	_ "github.com/lib/pq"
)

// Connect opens a raw database/sql connection on lib/pq using the same app.db
// properties as the gorm path. Schema management is left to the gorm bootstrap or
// external migrations.
func Connect() (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.schema"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("fail to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	return db, nil
}
