package processor

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
)

// Call outcomes reported to metrics
const (
	OutcomeSuccess   = "success"
	OutcomeTransient = "transient"
	OutcomePermanent = "permanent"
)

// InstrumentedProcessor records latency and outcome of every call to the wrapped processor
type InstrumentedProcessor struct {
	next         processorport.PaymentProcessor
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewInstrumentedProcessor wraps next
func NewInstrumentedProcessor(
	next processorport.PaymentProcessor,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *InstrumentedProcessor {
	return &InstrumentedProcessor{
		next:         next,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (p *InstrumentedProcessor) observe(operation string, start time.Time, err error) {
	elapsed := p.timeProvider.Since(start).Std()
	outcome := OutcomeSuccess
	switch {
	case err == nil:
	case errs.IsTransientProcessorError(err):
		outcome = OutcomeTransient
	default:
		outcome = OutcomePermanent
	}
	p.metrics.ProcessorCall(operation, outcome, elapsed)

	if err != nil {
		fields := errs.LogFields(err)
		fields["operation"] = operation
		fields["elapsed_ms"] = elapsed.Milliseconds()
		p.logger.Warn("Processor call failed", fields)
		return
	}
	p.logger.Debug("Processor call finished", map[string]any{
		"operation":  operation,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}

func (p *InstrumentedProcessor) CreateAccount(ctx context.Context, req processorport.AccountRequest) (*processorport.Account, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateAccount(ctx, req)
	p.observe(processorport.OpCreateAccount, start, err)
	return out, err
}

func (p *InstrumentedProcessor) RetrieveAccount(ctx context.Context, accountID string) (*processorport.Account, error) {
	start := p.timeProvider.Now()
	out, err := p.next.RetrieveAccount(ctx, accountID)
	p.observe(processorport.OpRetrieveAccount, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateAccountLink(ctx context.Context, req processorport.AccountLinkRequest) (*processorport.Link, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateAccountLink(ctx, req)
	p.observe(processorport.OpCreateAccountLink, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateLoginLink(ctx context.Context, accountID string) (*processorport.Link, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateLoginLink(ctx, accountID)
	p.observe(processorport.OpCreateLoginLink, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateCustomer(ctx context.Context, req processorport.CustomerRequest) (*processorport.Customer, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateCustomer(ctx, req)
	p.observe(processorport.OpCreateCustomer, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateDestinationCharge(ctx context.Context, req processorport.DestinationChargeRequest) (*processorport.Charge, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateDestinationCharge(ctx, req)
	p.observe(processorport.OpDestinationCharge, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreatePlatformCharge(ctx context.Context, req processorport.PlatformChargeRequest) (*processorport.Charge, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreatePlatformCharge(ctx, req)
	p.observe(processorport.OpPlatformCharge, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateTransfer(ctx context.Context, req processorport.TransferRequest) (*processorport.Transfer, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateTransfer(ctx, req)
	p.observe(processorport.OpCreateTransfer, start, err)
	return out, err
}

func (p *InstrumentedProcessor) RetrieveBalance(ctx context.Context, accountID string) (*processorport.Balance, error) {
	start := p.timeProvider.Now()
	out, err := p.next.RetrieveBalance(ctx, accountID)
	p.observe(processorport.OpRetrieveBalance, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreatePayout(ctx context.Context, req processorport.PayoutRequest) (*processorport.Payout, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreatePayout(ctx, req)
	p.observe(processorport.OpCreatePayout, start, err)
	return out, err
}

func (p *InstrumentedProcessor) CreateEphemeralKey(ctx context.Context, req processorport.EphemeralKeyRequest) (*processorport.EphemeralKey, error) {
	start := p.timeProvider.Now()
	out, err := p.next.CreateEphemeralKey(ctx, req)
	p.observe(processorport.OpCreateEphemeralKey, start, err)
	return out, err
}
