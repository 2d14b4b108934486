package domain

// Emailer - внешний сервис доставки почты. Результат доставки ядро не анализирует,
// кроме возвращенной ошибки.
type Emailer interface {
	SendPlainEmail(recipients []string, subject, message string) error
}
