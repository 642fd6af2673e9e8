package github

import "net/http"

// NewClientWithHTTP exports the private constructor with an injectable http
// client for testing purposes.
func NewClientWithHTTP(settings Settings, client *http.Client) *Client {
	return newClientWithHTTP(settings, client)
}
