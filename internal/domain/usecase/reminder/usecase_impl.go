package reminder

import (
	"fmt"
	"time"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fetchSize is the gateway page size used while collecting due todos.
const fetchSize = 100

// DueTodoMessage is the reminder payload published for each todo whose deadline
// is the current date.
type DueTodoMessage struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Deadline string `json:"deadline"`
}

type reminderUseCase struct {
	gateway   db.TodoGateway
	sender    queue.Sender
	health    queue.HealthGateway
	queueName string
}

func NewReminderUseCase(gateway db.TodoGateway, sender queue.Sender, health queue.HealthGateway, queueName string) UseCase {
	return &reminderUseCase{
		gateway:   gateway,
		sender:    sender,
		health:    health,
		queueName: queueName,
	}
}

// SendDueReminders publishes a reminder for every pending todo whose deadline is
// today (UTC). Completed todos get no reminder.
func (uc *reminderUseCase) SendDueReminders() error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	pending := false

	filter := model.TodoFilter{Deadline: &today, Completed: &pending}

	messages := make([]queue.BatchMessage, 0)
	for offset := 0; ; offset += fetchSize {
		todos, err := uc.gateway.FindPage(filter, offset, fetchSize)
		if err != nil {
			return err
		}

		for _, todo := range todos {
			messages = append(messages, queue.BatchMessage{
				MessageID: uuid.New().String(),
				Body: DueTodoMessage{
					ID:       todo.ID,
					Title:    todo.Title,
					Priority: todo.Priority,
					Deadline: today.Format(model.DateLayout),
				},
			})
		}

		if len(todos) < fetchSize {
			break
		}
	}

	if len(messages) == 0 {
		log.Debug("no todos due today, skipping reminders")
		return nil
	}

	result, err := uc.sender.SendMessageBatch(uc.queueName, messages)
	sendErr := err
	if err == nil && len(result.Failed) > 0 {
		sendErr = fmt.Errorf("%d of %d reminders failed to send", len(result.Failed), len(messages))
	}
	if uc.health != nil {
		uc.health.ReportSend(uc.queueName, sendErr)
	}
	if err != nil {
		return err
	}

	if len(result.Failed) > 0 {
		log.Warn("some reminders failed to send",
			zap.Int("sent", len(result.Successful)),
			zap.Int("failed", len(result.Failed)))
		return nil
	}

	log.Info("due reminders sent", zap.Int("count", len(result.Successful)))
	return nil
}
