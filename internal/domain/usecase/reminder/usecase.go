package reminder

type UseCase interface {
	SendDueReminders() error
}
