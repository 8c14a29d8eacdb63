// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package otel wires a local-only tracer for the debug server and, when
// requested, the analyzer's per-rule spans (§6.5: the compiler has no
// network egress, so no OTLP exporter ships with it — spans are created
// and recorded for in-process inspection, never shipped off box).
package otel

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// OTelConfig holds configuration for the local tracer. Endpoint/Protocol
// are validated but never dialed — they exist so a real OTLP exporter
// can be dropped in later without changing the CLI surface or the
// config shape callers already build.
type OTelConfig struct {
	Enabled        bool
	Endpoint       string
	Protocol       string
	ServiceName    string
	ServiceVersion string
	PackName       string
	TraceExecution bool
}

type ShutdownFn func(context.Context) error

// InitProvider builds a TracerProvider scoped to this process and
// installs it as the global tracer. It never constructs an exporter —
// spans are created, attributed, and ended, but go nowhere past the
// SDK's in-memory bookkeeping (§6.5 "No I/O during analysis").
func InitProvider(ctx context.Context, config OTelConfig) (ShutdownFn, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	if _, err := url.Parse(config.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	switch config.Protocol {
	case "grpc", "http":
	default:
		return nil, fmt.Errorf("unsupported protocol: %s", config.Protocol)
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(config.ServiceName),
		semconv.ServiceVersionKey.String(config.ServiceVersion),
	}
	if config.PackName != "" {
		attrs = append(attrs, semconv.ServiceNamespaceKey.String(config.PackName))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// No span processor is attached: every span this provider creates is
	// recorded and immediately discarded on End(). That's enough to
	// exercise the analyzer's per-rule instrumentation points (§4.3)
	// without ever producing a network export.
	tracerProvider := trace.NewTracerProvider(trace.WithResource(res))

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider.Shutdown, nil
}
