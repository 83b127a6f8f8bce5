// Package remote implements the order API collaborators used by the account views.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MikeMC777/storefront-account/internal/order"
	"github.com/MikeMC777/storefront-account/internal/warranty"
)

var (
	ErrNotFound = errors.New("remote resource not found")
	ErrRemote   = errors.New("order api error")
)

// Ext talks to the storefront order API on behalf of the signed-in customer.
type Ext struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

func NewExt(baseURL, token string, timeout time.Duration) *Ext {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Ext{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		Token:   token,
	}
}

func (e *Ext) FetchOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	if err := e.do(ctx, http.MethodGet, "/orders/me", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return out, nil
}

func (e *Ext) RequestStatusChange(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	body := map[string]int{"status": int(status)}
	var out order.Order
	if err := e.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Ext) RequestDeletion(ctx context.Context, id string) error {
	return e.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

func (e *Ext) FetchWarrantyRecords(ctx context.Context) ([]warranty.Record, error) {
	var out []warranty.Record
	if err := e.do(ctx, http.MethodGet, "/warranties/me", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch warranties: %w", err)
	}
	return out, nil
}

func (e *Ext) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, e.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if e.Token != "" {
		req.Header.Set("Authorization", "Bearer "+e.Token)
	}

	res, err := e.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s: %s", ErrRemote, method, path, res.Status)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrRemote, path, err)
	}
	return nil
}
