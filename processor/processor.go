package processor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ShareFrame/order-handler/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const successBody = "Successfully processed messages"

// OrderWriter upserts a record keyed by its order id.
type OrderWriter interface {
	PutOrder(ctx context.Context, rec models.OrderRecord) error
}

// Processor is the SQS handler. It holds no per-invocation state.
type Processor struct {
	store OrderWriter
	log   *zap.Logger
	now   func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock overrides the clock used to default missing order timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

func New(store OrderWriter, log *zap.Logger, opts ...Option) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Processor{store: store, log: log, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// HandleSQSEvent upserts one order per record, in batch order. The first
// failure stops the batch and is returned so the queue redelivers it;
// records already written stay written.
func (p *Processor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (models.Acknowledgment, error) {
	p.log.Info("lambda function invoked", zap.Int("records", len(event.Records)))
	p.log.Debug("sqs event", zap.Any("event", event))

	for i, msg := range event.Records {
		if err := p.processRecord(ctx, i, msg); err != nil {
			return models.Acknowledgment{}, err
		}
	}

	p.log.Info("successfully processed all sqs messages", zap.Int("records", len(event.Records)))
	return models.Acknowledgment{StatusCode: http.StatusOK, Body: successBody}, nil
}

func (p *Processor) processRecord(ctx context.Context, index int, msg events.SQSMessage) error {
	fail := func(kind FailureKind, err error) error {
		perr := &ProcessingError{Kind: kind, Index: index, MessageID: msg.MessageId, Err: err}
		fields := []zap.Field{
			zap.String("kind", kind.String()),
			zap.Int("index", index),
			zap.String("message_id", msg.MessageId),
			zap.Error(err),
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fields = append(fields, zap.String("error_code", apiErr.ErrorCode()))
		}
		p.log.Error("error processing sqs message", fields...)
		return perr
	}

	if err := ctx.Err(); err != nil {
		return fail(KindStorageWriteFailure, err)
	}

	doc, err := ParseOrder(msg.Body)
	if err != nil {
		return fail(KindMalformedPayload, err)
	}
	rec, err := Normalize(doc, p.now())
	if err != nil {
		return fail(KindMalformedPayload, err)
	}

	p.log.Info("processing order", zap.String("order_id", rec.OrderID), zap.String("message_id", msg.MessageId))
	p.log.Debug("order record", zap.Any("record", rec))

	if err := p.store.PutOrder(ctx, rec); err != nil {
		return fail(KindStorageWriteFailure, err)
	}

	p.log.Info("successfully put order", zap.String("order_id", rec.OrderID))
	return nil
}
