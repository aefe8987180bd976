// Package api implements the authenticated request gateway: a thin wrapper
// over net/http that injects the current bearer credential and the JSON
// content type on every outbound call to the shop backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sunflowers/shopfront/internal/logging"
)

// CredentialSource supplies the current bearer credential for outbound
// requests. The session manager implements it; handing the source to the
// gateway explicitly avoids any process-wide mutable header state.
//
// An empty credential means "send unauthenticated".
type CredentialSource interface {
	Credential() string
}

// Gateway issues HTTP requests against the backend. It is stateless apart
// from the injected http.Client and credential source, and performs no
// retries: network and HTTP failures are the caller's to branch on.
type Gateway struct {
	http  *http.Client
	creds CredentialSource
	log   logging.Logger
}

func NewGateway(hc *http.Client, creds CredentialSource, log logging.Logger) *Gateway {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Gateway{http: hc, creds: creds, log: log}
}

// JSON sends a request with a JSON-encoded body (nil means no body) and
// decodes a 2xx response body into out (nil means discard).
//
// Headers: Content-Type defaults to application/json; entries in hdr win
// on conflict. The bearer credential, when present, is injected as the
// Authorization header.
//
// The HTTP status is returned for every completed exchange, success or
// not; the error return is reserved for transport and decode failures,
// which are wrapped in ErrUnavailable or returned as-is respectively.
func (g *Gateway) JSON(ctx context.Context, method, url string, body, out any, hdr http.Header) (int, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vs := range hdr {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	g.authorize(req)

	return g.do(req, out)
}

// MultipartPayload carries a pre-built multipart body and the content type
// produced by its multipart.Writer (which embeds the boundary).
type MultipartPayload struct {
	Body        io.Reader
	ContentType string
}

// Multipart POSTs a multipart form. Unlike JSON it never forces the
// application/json content type: the multipart writer's own boundary
// header is used instead.
func (g *Gateway) Multipart(ctx context.Context, url string, form *MultipartPayload, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, form.Body)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", form.ContentType)
	g.authorize(req)

	return g.do(req, out)
}

func (g *Gateway) authorize(req *http.Request) {
	if g.creds == nil {
		return
	}
	if cred := g.creds.Credential(); cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}
}

func (g *Gateway) do(req *http.Request, out any) (int, error) {
	resp, err := g.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if !IsSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.log.Debug(req.Context(), "request failed",
			"method", req.Method, "url", req.URL.String(),
			"status", resp.StatusCode, "body", string(body))
		return resp.StatusCode, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response body: %w", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp.StatusCode, nil
}
