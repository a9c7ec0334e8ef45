package telemetry

import (
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

func methodAttr(method string) attribute.KeyValue {
	return attribute.String("method", method)
}

func routeAttr(route string) attribute.KeyValue {
	return attribute.String("route", route)
}

func statusAttr(status int) attribute.KeyValue {
	return attribute.String("status", strconv.Itoa(status))
}

func reasonAttr(reason string) attribute.KeyValue {
	return attribute.String("reason", reason)
}
