package africastalking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"afyalinks/pkg/logger"
)

const (
	airtimeServiceName = "africastalking-airtime"
	airtimePath        = "/version1/airtime/send"

	airtimeCurrency = "UGX"
)

type AirtimeGateway struct {
	client *client
	log    gatewayLogger
}

func NewAirtimeGateway(cfg Config, httpClient httpDoer, log gatewayLogger) *AirtimeGateway {
	return &AirtimeGateway{
		client: newClient(cfg, httpClient),
		log:    log.With(logger.NewField("gateway", airtimeServiceName)),
	}
}

type airtimeRecipient struct {
	PhoneNumber  string `json:"phoneNumber"`
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
}

// Send credits airtime to the phone, amount in whole currency units.
func (g *AirtimeGateway) Send(ctx context.Context, phone string, amount int64) error {
	if g.client.mocked() {
		GatewayMockedSendsTotal.WithLabelValues(airtimeServiceName, "Send").Inc()
		g.log.With(
			logger.NewField("phone", phone),
			logger.NewField("amount", amount),
		).Info("no api key configured, airtime not sent")
		return nil
	}

	recipients, err := json.Marshal([]airtimeRecipient{{
		PhoneNumber:  phone,
		CurrencyCode: airtimeCurrency,
		Amount:       fmt.Sprintf("%s %d", airtimeCurrency, amount),
	}})
	if err != nil {
		return fmt.Errorf("gateway airtime, marshal recipients: %w", err)
	}

	form := url.Values{}
	form.Set("recipients", string(recipients))

	start := time.Now()
	var httpCode string
	err = g.client.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var callErr error
		httpCode, callErr = g.client.postForm(ctx, airtimePath, form)
		if callErr != nil {
			GatewayRetriesTotal.WithLabelValues(airtimeServiceName, "Send", httpCode).Inc()
		}
		return callErr
	})
	GatewayRequestDuration.WithLabelValues(airtimeServiceName, "Send", httpCode).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("gateway airtime, send: %w", err)
	}

	g.log.With(
		logger.NewField("phone", phone),
		logger.NewField("amount", amount),
	).Info("airtime sent")
	return nil
}
