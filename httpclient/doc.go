// Package httpclient provides a configurable HTTP client with built-in
// authentication and typed error classification.
//
// The transcription backend uses it for every call to the remote service;
// status codes are classified into structured errors so callers can
// distinguish auth failures, rate limiting, and server errors.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.eu.assemblyai.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.APIKeyAuthHeader("my-key", "authorization"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/v2/transcript/abc123",
//	})
package httpclient
