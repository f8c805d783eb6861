// Package http is the HTTP transport: chi behind a Router seam, the JSON envelope and
// return-style handlers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"bankocr/internal/platform/logger"
	pnet "bankocr/internal/platform/net"
	"bankocr/internal/platform/net/http/bind"
)

// Envelope is the body written for every response
type Envelope = pnet.Wire

// JSON writes v as application/json with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Debug().Err(err).Msg("response encode failed")
	}
}

// Response is what a return-style handler produces
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Error returns a response whose status and envelope come from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning func to a Handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).Write(w, r) }
}

// Write renders resp; an error body takes its status from the error code
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		if status >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
		JSON(w, status, body)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	_, body := pnet.Status(status, resp.Body, reqID)
	JSON(w, status, body)
}

// JSONHandler binds and validates a T from the body before calling fn
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// NoBodyHandler calls fn without reading a body
func NoBodyHandler(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// GetJSON mounts fn for GET
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, NoBodyHandler(fn))
}

// PostJSON mounts fn for POST with a bound body
func PostJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(fn, opts...))
}
