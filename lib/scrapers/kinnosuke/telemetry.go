package kinnosuke

import (
	"kinnosuke/lib/telemetry"

	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("kinnosuke.lib.scrapers.kinnosuke")
var meter = telemetry.Meter("kinnosuke.lib.scrapers.kinnosuke")

var clockCounter, _ = meter.Int64Counter(
	"clock_actions",
	metric.WithDescription("Clock actions submitted to the portal by kind and outcome."),
)
