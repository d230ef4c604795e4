//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_proof_post_test
package invoice_proof_post

import (
	"context"

	"afyalinks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitPaymentProof(ctx context.Context, invoiceID, pharmacyID, proofURL string) error
}
