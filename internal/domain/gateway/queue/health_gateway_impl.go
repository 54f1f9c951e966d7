package queue

import (
	"strconv"
	"sync"
	"time"

	"todo-api/internal/domain/model"
)

type queueStatus struct {
	lastError string
	lastAt    time.Time
	sent      int64
	failed    int64
}

type QueueHealthGateway struct {
	queues map[string]*queueStatus
	mutex  sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{
		queues: make(map[string]*queueStatus),
	}
}

func (gateway *QueueHealthGateway) ReportSend(queueName string, err error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	status, ok := gateway.queues[queueName]
	if !ok {
		status = &queueStatus{}
		gateway.queues[queueName] = status
	}

	status.lastAt = time.Now().UTC()
	if err != nil {
		status.failed++
		status.lastError = err.Error()
		return
	}
	status.sent++
	status.lastError = ""
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.queues) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":      "No queue activity yet",
				"queues_total": "0",
			},
		}
	}

	overallStatus := model.StatusUp
	details := make(map[string]string)

	for name, status := range gateway.queues {
		if status.lastError != "" {
			overallStatus = model.StatusDown
			details[name+"_status"] = "DOWN"
			details[name+"_last_error"] = status.lastError
		} else {
			details[name+"_status"] = "UP"
		}
		details[name+"_sent"] = strconv.FormatInt(status.sent, 10)
		details[name+"_failed"] = strconv.FormatInt(status.failed, 10)
		details[name+"_last_at"] = status.lastAt.Format(time.RFC3339)
	}

	details["queues_total"] = strconv.Itoa(len(gateway.queues))

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
