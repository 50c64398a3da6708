package kinnosuke

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

const timeSheetPath = "/?module=timesheet&action=browse"

func (c *Client) TimeSheet(ctx context.Context) (TimeSheet, error) {
	ctx, span := tracer.Start(ctx, "client:TimeSheet")
	defer span.End()

	body, err := c.GetWithLogin(ctx, timeSheetPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch timesheet")
		return TimeSheet{}, err
	}

	sheet, err := NewTimeSheet(ScrapeTimeSheet(ctx, body))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return TimeSheet{}, err
	}
	return sheet, nil
}
