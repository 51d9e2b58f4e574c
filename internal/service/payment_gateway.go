package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ChargeResult is the provider's answer to a charge attempt
type ChargeResult struct {
	Reference string `json:"reference"`
	Approved  bool   `json:"approved"`
	Detail    string `json:"detail,omitempty"`
}

// PaymentGateway abstracts the external payment provider. The modeled
// workflows only ever need a single synchronous charge call; webhook
// reconciliation belongs to the provider integration, not here.
type PaymentGateway interface {
	Charge(ctx context.Context, reference string, amount decimal.Decimal) (*ChargeResult, error)
}

// stubGateway approves every charge. It stands in for a real provider;
// declines only happen when auto-approve is switched off in config.
type stubGateway struct {
	log         *logrus.Logger
	autoApprove bool
}

func NewStubGateway(log *logrus.Logger, autoApprove bool) PaymentGateway {
	return &stubGateway{log: log, autoApprove: autoApprove}
}

var _ PaymentGateway = (*stubGateway)(nil)

func (g *stubGateway) Charge(ctx context.Context, reference string, amount decimal.Decimal) (*ChargeResult, error) {
	result := &ChargeResult{
		Reference: fmt.Sprintf("stub-%d", time.Now().UTC().UnixNano()),
		Approved:  g.autoApprove,
	}
	if !g.autoApprove {
		result.Detail = "declined by gateway configuration"
	}

	g.log.Infof("Gateway charge: ref=%s, amount=%s, approved=%t", reference, amount.String(), result.Approved)
	return result, nil
}
