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

// Package api is the debug HTTP surface named in SPEC_FULL.md's
// supplemented features: a minimal local endpoint, grounded on the
// teacher's own api/http.go, that reruns the exporter on demand and
// serves its diagnostics for interactive debugging. No network I/O
// happens during analysis itself — only in response to a request.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/binaek/gocoll/collection"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slices"

	"github.com/worldrules/ruleexport/analyzer"
	"github.com/worldrules/ruleexport/exporter"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/loader"
	"github.com/worldrules/ruleexport/pack"
	"github.com/worldrules/ruleexport/worldmodel"
)

type ListenerServerPair struct {
	Listener net.Listener
	Server   *http.Server
}

func NewListenerServerPair(listener net.Listener, server *http.Server) *ListenerServerPair {
	return &ListenerServerPair{Listener: listener, Server: server}
}

func (p *ListenerServerPair) Close() error {
	if err := p.Listener.Close(); err != nil {
		return err
	}
	return p.Server.Close()
}

// DebugServer reruns an export on request and serves the result of the
// last run. It holds no world state between requests beyond that
// cached result — every /export request loads fresh world documents,
// consistent with §9's "no singletons" rule for the Exporter itself.
type DebugServer struct {
	pack           *pack.PackFile
	worldLocation  string
	tracer         oteltrace.Tracer
	traceExecution bool

	mu        sync.RWMutex
	lastRun   *exportResult
	listeners []*ListenerServerPair
}

type exportResult struct {
	Games       []string `json:"games"`
	Diagnostics []string `json:"diagnostics"`
	Error       string   `json:"error,omitempty"`
}

// NewDebugServer builds a server that (re-)exports worldLocation's
// world documents on each /export request. tracer may be nil.
func NewDebugServer(p *pack.PackFile, worldLocation string, tracer oteltrace.Tracer, traceExecution bool) *DebugServer {
	return &DebugServer{pack: p, worldLocation: worldLocation, tracer: tracer, traceExecution: traceExecution}
}

func (s *DebugServer) runExport(ctx context.Context) *exportResult {
	worlds, err := loader.LoadWorlds(ctx, s.worldLocation, nil)
	if err != nil {
		return &exportResult{Error: err.Error()}
	}

	registry := handler.NewRegistry()
	an := analyzer.New(registry, analyzer.NewAnalysisCache(4096), s.tracer, s.traceExecution)
	exp := exporter.New(registry, an, false)
	if len(s.pack.KnownHelpers) > 0 {
		exp.DeclaredHelpers = s.pack.KnownHelpers
	}

	groups := map[string][]*worldmodel.World{}
	for _, w := range worlds {
		groups[w.Game] = append(groups[w.Game], w)
	}

	result := &exportResult{}
	for game, group := range groups {
		result.Games = append(result.Games, game)
		_, diags, err := exp.Export(ctx, game, group)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		for _, d := range diags.Warnings {
			result.Diagnostics = append(result.Diagnostics, d.String())
		}
	}
	return result
}

func (s *DebugServer) handleExport(w http.ResponseWriter, r *http.Request) {
	result := s.runExport(r.Context())
	s.mu.Lock()
	s.lastRun = result
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if result.Error != "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_ = json.NewEncoder(w).Encode(result)
}

func (s *DebugServer) handleLast(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.lastRun
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if last == nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no export has run yet"})
		return
	}
	_ = json.NewEncoder(w).Encode(last)
}

func (s *DebugServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// resolveBindings mirrors the teacher's own predefined-listen-address
// resolution (api/net.go), translating the serve command's --listen
// values and --port into concrete host:port bindings.
func resolveBindings(port int, listen []string) ([]string, error) {
	predefined := [...]string{"local", "local4", "local6", "network", "network4", "network6"}

	for _, listenAddr := range listen {
		if slices.Contains(predefined[:], listenAddr) && len(listen) != 1 {
			return nil, fmt.Errorf("when using predefined listen addresses, there must be exactly one address")
		}
	}

	if len(listen) == 0 {
		return nil, fmt.Errorf("no listen addresses given")
	}

	var addresses []string
	if slices.Contains(predefined[:], listen[0]) {
		switch listen[0] {
		case "local":
			addresses = []string{net.JoinHostPort("localhost", fmt.Sprintf("%d", port))}
		case "local4":
			addresses = []string{net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port))}
		case "local6":
			addresses = []string{net.JoinHostPort("[::1]", fmt.Sprintf("%d", port))}
		case "network":
			addresses = []string{net.JoinHostPort("", fmt.Sprintf("%d", port))}
		case "network4":
			addresses = []string{net.JoinHostPort("0.0.0.0", fmt.Sprintf("%d", port))}
		case "network6":
			addresses = []string{net.JoinHostPort("[::]", fmt.Sprintf("%d", port))}
		}
	} else {
		addresses = collection.Map(
			collection.From(listen...),
			func(listenAddr string) string {
				return net.JoinHostPort(listenAddr, fmt.Sprintf("%d", port))
			},
		).Elements()
	}

	return addresses, nil
}

// Setup opens one listener per resolved binding and wires the routes;
// StartServer must be called afterward to actually serve.
func (s *DebugServer) Setup(ctx context.Context, port int, listen []string) error {
	mux := http.NewServeMux()
	mux.Handle("POST /export", http.HandlerFunc(s.handleExport))
	mux.Handle("GET /export/last", http.HandlerFunc(s.handleLast))
	mux.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	bindings, err := resolveBindings(port, listen)
	if err != nil {
		return err
	}

	s.listeners = make([]*ListenerServerPair, 0, len(bindings))
	for _, binding := range bindings {
		ln, err := net.Listen("tcp", binding)
		if err != nil {
			for _, l := range s.listeners {
				_ = l.Close()
			}
			s.listeners = nil
			return fmt.Errorf("failed to listen on %s: %w", binding, err)
		}
		s.listeners = append(s.listeners, NewListenerServerPair(ln, &http.Server{
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		}))
		slog.DebugContext(ctx, "Listening on server", "binding", binding)
	}
	return nil
}

// StartServer serves on every listener opened by Setup until ctx is
// done.
func (s *DebugServer) StartServer(ctx context.Context) {
	var wg sync.WaitGroup
	for _, ln := range s.listeners {
		server := ln.Server
		listener := ln.Listener
		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.DebugContext(ctx, "export debug endpoint available", "method", "POST", "address", listener.Addr().String())
			if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
				slog.ErrorContext(ctx, "debug server exited", "error", err)
			}
		}()
	}
	wg.Wait()
}

// StopServer closes every listener, which in turn causes StartServer's
// Serve calls to return.
func (s *DebugServer) StopServer(ctx context.Context) error {
	for _, ln := range s.listeners {
		if err := ln.Server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
