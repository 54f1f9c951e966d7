package queue

import (
	"todo-api/internal/domain/model"
)

// HealthGateway reports queue health based on the outcome of publishes. Publishers
// report every send so the health endpoint can surface a failing queue.
type HealthGateway interface {
	Health() model.ComponentHealthStatus
	ReportSend(queueName string, err error)
}
