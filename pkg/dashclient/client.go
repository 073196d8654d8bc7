// Package dashclient talks to the dashboard API and exposes its list endpoints
// as listcontroller fetchers.
package dashclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/pkg/listcontroller"
)

const dateLayout = "2006-01-02"

// APIError is a non-2xx answer carrying the server's message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard api: %d %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func New(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, Timeout: 10 * time.Second}
}

// Login exchanges credentials for a bearer token and keeps it on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Data struct {
			Token string `json:"access_token"`
		} `json:"data"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, fiber.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return err
	}
	if out.Data.Token == "" {
		return errors.New("dashboard api: login response without token")
	}
	c.Token = out.Data.Token
	return nil
}

// Fetcher builds a listcontroller.Fetcher for a dashboard list path, e.g. "/applications".
func Fetcher[T any](c *Client, path string) listcontroller.Fetcher[T] {
	return func(ctx context.Context, q listcontroller.Query) (listcontroller.Page[T], error) {
		var page listcontroller.Page[T]
		err := c.do(ctx, fiber.MethodGet, "/api/d"+path, EncodeQuery(q), nil, &page)
		return page, err
	}
}

// EncodeQuery renders a Query with the parameter names the list endpoints read.
func EncodeQuery(q listcontroller.Query) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.From != nil {
		v.Set("startDate", q.From.Format(dateLayout))
	}
	if q.To != nil {
		v.Set("endDate", q.To.Format(dateLayout))
	}
	if q.IncludeStats {
		v.Set("includeStats", "true")
	}
	return v
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, fiber.MethodPut, "/api/d/applications", nil, map[string]string{"id": id, "status": status}, nil)
}

func (c *Client) UpdateWithdrawalStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, fiber.MethodPut, "/api/d/withdrawals/"+url.PathEscape(id)+"/status", nil, map[string]string{"status": status}, nil)
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, fiber.MethodDelete, "/api/d/applications", url.Values{"id": {id}}, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	if c.Token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.Token)
	}
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			fiber.ReleaseAgent(a)
			return err
		}
		a.ContentType(fiber.MIMEApplicationJSON).Body(raw)
	}
	timeout := c.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout || timeout <= 0 {
			timeout = left
		}
	}
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	// Bytes melepas agent sendiri
	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if code < 200 || code >= 300 {
		var env struct {
			Message string `json:"message"`
		}
		_ = sonic.Unmarshal(raw, &env)
		return &APIError{Status: code, Message: env.Message}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return sonic.Unmarshal(raw, out)
}
