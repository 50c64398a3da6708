package kinnosuke

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

func (c *Client) ClockIn(ctx context.Context) (TimeRecorder, error) {
	return c.Clock(ctx, ClockIn)
}

func (c *Client) ClockOut(ctx context.Context) (TimeRecorder, error) {
	return c.Clock(ctx, ClockOut)
}

func (c *Client) GoOut(ctx context.Context) (TimeRecorder, error) {
	return c.Clock(ctx, GoOut)
}

func (c *Client) GoBack(ctx context.Context) (TimeRecorder, error) {
	return c.Clock(ctx, GoBack)
}

// Clock stamps the given kind and returns the recorder rendered in the
// response. It is never retried, a failed stamp is left to the caller.
func (c *Client) Clock(ctx context.Context, kind ClockKind) (TimeRecorder, error) {
	ctx, span := tracer.Start(ctx, "client:Clock")
	defer span.End()
	span.SetAttributes(attribute.String("kind", kind.String()))

	c.clockLock.Lock()
	defer c.clockLock.Unlock()

	recorder, err := c.clock(ctx, kind)
	clockCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
		attribute.String("outcome", clockOutcome(err)),
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TimeRecorder{}, err
	}
	return recorder, nil
}

func (c *Client) clock(ctx context.Context, kind ClockKind) (TimeRecorder, error) {
	page, err := c.recorderPage(ctx)
	if err != nil {
		return TimeRecorder{}, err
	}

	token, ok := ScrapeCsrfToken(page)
	if !ok {
		return TimeRecorder{}, CsrfTokenMissing
	}

	slog.DebugContext(ctx, "submitting clock action", "kind", kind.String(), "code", kind.Code())
	body, err := c.post(ctx, "/", clockForm(kind, token))
	if err != nil {
		return TimeRecorder{}, err
	}

	recorder := ScrapeTimeRecorder(ctx, body)
	if kind.Stamp(recorder) == "" {
		return TimeRecorder{}, fmt.Errorf("%w: %s was not recorded", ClockActionFailed, kind)
	}
	return recorder, nil
}

// TimeRecorder returns the current stamps without submitting anything.
func (c *Client) TimeRecorder(ctx context.Context) (TimeRecorder, error) {
	ctx, span := tracer.Start(ctx, "client:TimeRecorder")
	defer span.End()

	page, err := c.recorderPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TimeRecorder{}, err
	}
	return ScrapeTimeRecorder(ctx, page), nil
}

// recorderPage renders the clock widget, the portal serves it on the page
// returned right after login.
func (c *Client) recorderPage(ctx context.Context) ([]byte, error) {
	page, err := c.Login(ctx)
	if err != nil {
		return nil, err
	}
	if HasIpRestriction(page) {
		return nil, UnauthorizedIp
	}
	return page, nil
}

func clockOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, InvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, UnauthorizedIp):
		return "unauthorized_ip"
	case errors.Is(err, CsrfTokenMissing):
		return "csrf_token_missing"
	case errors.Is(err, ClockActionFailed):
		return "not_recorded"
	}
	return "error"
}
