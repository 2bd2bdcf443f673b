//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of Presmark.
//
// Presmark is licensed under the latest version of the EUPL (European
// Union Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2025-present Detlef Stern
//-----------------------------------------------------------------------------

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// previewServer renders the input file on every request, so that changes
// are visible after a reload.
type previewServer struct {
	http.Server

	logger *slog.Logger
	mux    *http.ServeMux
}

func newPreviewServer(logger *slog.Logger, addr, arg string, debug bool) *previewServer {
	s := previewServer{
		Server: http.Server{
			Addr:         addr,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger.With("system", "HTTP"),
		mux:    http.NewServeMux(),
	}
	if debug {
		s.ReadTimeout = 0
		s.WriteTimeout = 0
		s.IdleTimeout = 0
	}
	s.mux.HandleFunc("/", makeHandler(s.logger, arg))
	s.Handler = &s
	return &s
}

// ServeHTTP serves the HTTP traffic for this server.
func (s *previewServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	arw := appResponseWriter{w: w, statusCode: http.StatusOK}
	s.mux.ServeHTTP(&arw, r)
	s.logger.DebugContext(r.Context(), "HTTP", "status", arw.statusCode, "method", r.Method, "path", r.URL)
}

type appResponseWriter struct {
	w          http.ResponseWriter
	statusCode int
}

func (arw *appResponseWriter) Header() http.Header            { return arw.w.Header() }
func (arw *appResponseWriter) Write(data []byte) (int, error) { return arw.w.Write(data) }
func (arw *appResponseWriter) WriteHeader(statusCode int) {
	header := arw.w.Header()
	if len(header.Values("Server")) == 0 {
		header.Add("Server", "Presmark")
	}
	arw.statusCode = statusCode
	arw.w.WriteHeader(statusCode)
}

// serve runs the preview server until an interrupt signal arrives.
func serve(logger *slog.Logger, addr, arg string) error {
	if *sZURL == "" && (arg == "" || arg == "-") {
		return errors.New("preview server needs an input file")
	}
	s := newPreviewServer(logger, addr, arg, *bDebug)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("Shut down")
		_ = s.Shutdown(context.Background())
	}()
	logger.Info("Listening", "address", addr)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func makeHandler(logger *slog.Logger, arg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			logger.Debug("NOTF", "path", r.URL.Path)
			http.Error(w, fmt.Sprintf("Unhandled request %q", r.URL), http.StatusNotFound)
			return
		}
		var buf bytes.Buffer
		if err := run(r.Context(), logger, &buf, arg); err != nil {
			logger.Warn("Render", "input", arg, "error", err)
			http.Error(w, fmt.Sprintf("Unable to render %s: %v", arg, err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}
