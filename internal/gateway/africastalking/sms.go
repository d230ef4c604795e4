package africastalking

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"afyalinks/pkg/logger"
)

const (
	smsServiceName = "africastalking-sms"
	smsPath        = "/version1/messaging"
)

type SMSGateway struct {
	client *client
	log    gatewayLogger
}

func NewSMSGateway(cfg Config, httpClient httpDoer, log gatewayLogger) *SMSGateway {
	return &SMSGateway{
		client: newClient(cfg, httpClient),
		log:    log.With(logger.NewField("gateway", smsServiceName)),
	}
}

// Send delivers one message to every recipient, E.164 phone numbers. In
// mock mode the message is logged and counted instead.
func (g *SMSGateway) Send(ctx context.Context, recipients []string, message string) error {
	if len(recipients) == 0 {
		return nil
	}

	if g.client.mocked() {
		GatewayMockedSendsTotal.WithLabelValues(smsServiceName, "Send").Inc()
		g.log.With(
			logger.NewField("recipients", strings.Join(recipients, ",")),
			logger.NewField("message", message),
		).Info("no api key configured, sms not sent")
		return nil
	}

	form := url.Values{}
	form.Set("to", strings.Join(recipients, ","))
	form.Set("message", message)

	start := time.Now()
	var httpCode string
	err := g.client.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var callErr error
		httpCode, callErr = g.client.postForm(ctx, smsPath, form)
		if callErr != nil {
			GatewayRetriesTotal.WithLabelValues(smsServiceName, "Send", httpCode).Inc()
		}
		return callErr
	})
	GatewayRequestDuration.WithLabelValues(smsServiceName, "Send", httpCode).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("gateway sms, send: %w", err)
	}

	g.log.With(logger.NewField("recipients", strings.Join(recipients, ","))).Info("sms sent")
	return nil
}
