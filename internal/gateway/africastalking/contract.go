//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=africastalking_test
package africastalking

import (
	"context"
	"net/http"

	"afyalinks/pkg/logger"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
