package notify

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/proxline/proxline/services/notify TelegramGW

// TelegramGW delivers rendered reminders. Implementations report
// failure through the error return and never panic across the
// boundary.
type TelegramGW interface {
	Send(ctx context.Context, telegramID, text string) error
}
