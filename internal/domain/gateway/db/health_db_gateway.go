package db

import (
	"todo-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
