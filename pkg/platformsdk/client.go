package platformsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded into the platform's error shape.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("platform: %s (%s)", e.Code, e.Description)
	}
	return fmt.Sprintf("platform: %s (HTTP %d)", e.Code, e.StatusCode)
}

// Client talks to one platform deployment. The zero value is not usable;
// construct with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// accessToken, when set, is attached as a bearer credential.
	accessToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that authenticates as the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.accessToken = token
	return &clone
}

// Login authenticates and returns a client bound to the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*Client, *LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, nil, err
	}
	return c.WithToken(resp.AccessToken), &resp, nil
}

func (c *Client) IssueInvite(ctx context.Context, tenantID string, req IssueInviteRequest) (*IssueInviteResponse, error) {
	var resp IssueInviteResponse
	path := fmt.Sprintf("/v1/tenants/%s/invites", tenantID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) InspectInvite(ctx context.Context, code string) (*InviteDetails, error) {
	var resp InviteDetails
	if err := c.do(ctx, http.MethodGet, "/v1/join/"+code, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RedeemInvite(ctx context.Context, code string, req RedeemInviteRequest) (*RedeemInviteResponse, error) {
	var resp RedeemInviteResponse
	if err := c.do(ctx, http.MethodPost, "/v1/join/"+code, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateUser(ctx context.Context, tenantID string, req CreateUserRequest) (*CreateUserResponse, error) {
	var resp CreateUserResponse
	path := fmt.Sprintf("/v1/tenants/%s/users", tenantID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListUsers(ctx context.Context, tenantID string) (*TenantUserList, error) {
	var resp TenantUserList
	path := fmt.Sprintf("/v1/tenants/%s/users", tenantID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateUserRoles(ctx context.Context, tenantID, profileID string, roles []string) error {
	path := fmt.Sprintf("/v1/tenants/%s/users/%s/roles", tenantID, profileID)
	return c.do(ctx, http.MethodPatch, path, UpdateRolesRequest{Roles: roles}, nil)
}

func (c *Client) GenerateLessonPlan(ctx context.Context, tenantID string, req LessonPlanRequest) (*LessonPlanResponse, error) {
	var resp LessonPlanResponse
	path := fmt.Sprintf("/v1/tenants/%s/lesson-plans", tenantID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SubmitLead(ctx context.Context, req LeadRequest) (*LeadResponse, error) {
	var resp LeadResponse
	if err := c.do(ctx, http.MethodPost, "/v1/leads", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "unknown_error"}
		var body ErrorResponse
		if derr := json.NewDecoder(resp.Body).Decode(&body); derr == nil && body.Error != "" {
			apiErr.Code = body.Error
			apiErr.Description = body.ErrorDescription
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
