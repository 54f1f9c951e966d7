package schedule

import (
	"github.com/robfig/cron/v3"

	"todo-api/internal/domain/usecase/reminder"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

type ReminderScheduler struct {
	cron    *cron.Cron
	useCase reminder.UseCase
}

func NewReminderScheduler(useCase reminder.UseCase) *ReminderScheduler {
	return &ReminderScheduler{cron: cron.New(), useCase: useCase}
}

// InitReminderScheduleTasks initializes deadline reminder schedule tasks
func (scheduler *ReminderScheduler) InitReminderScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.reminder.cron"), scheduler.SendDueReminders)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

func (scheduler *ReminderScheduler) SendDueReminders() {
	log.Info(msg.GetMessage("todo.cron.start"))

	if err := scheduler.useCase.SendDueReminders(); err != nil {
		log.Error(msg.GetMessage("todo.cron.failed"))
		return
	}

	log.Info(msg.GetMessage("todo.cron.end"))
}
