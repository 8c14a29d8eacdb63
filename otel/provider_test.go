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

package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/otel"
)

func TestInitProvider_DisabledIsNoop(t *testing.T) {
	shutdown, err := otel.InitProvider(context.Background(), otel.OTelConfig{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitProvider_InvalidEndpointFails(t *testing.T) {
	_, err := otel.InitProvider(context.Background(), otel.OTelConfig{
		Enabled:  true,
		Endpoint: "://not-a-valid-url",
		Protocol: "grpc",
	})
	require.Error(t, err)
}

func TestInitProvider_UnsupportedProtocolFails(t *testing.T) {
	_, err := otel.InitProvider(context.Background(), otel.OTelConfig{
		Enabled:  true,
		Endpoint: "localhost:4317",
		Protocol: "carrier-pigeon",
	})
	require.Error(t, err)
}
