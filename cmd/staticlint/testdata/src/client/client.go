package client

import (
	"context"
	"net/http"
)

func withoutContext() (*http.Request, error) {
	return http.NewRequest(http.MethodGet, "http://0.mk/", nil) // want "http.NewRequest called without a context"
}

func withContext(ctx context.Context) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, "http://0.mk/", nil)
}

type builder struct{}

func (builder) NewRequest() {}

func notHTTP() {
	var b builder
	b.NewRequest()
}
