package health

import (
	"todo-api/internal/domain/model"
)

type UseCase interface {
	CheckHealth() model.HealthResponse
}
