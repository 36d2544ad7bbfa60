package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/talariafits/talaria/internal/models"
	"github.com/talariafits/talaria/pkg/api"
)

// StatusError is returned for non-2xx backend responses so callers can
// branch on the status code (the closet flow treats 400 as a benign
// duplicate).
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// Client is the HTTP client for the Talaria backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	deviceID   string
}

// NewClient creates a new backend API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetDeviceID attaches an installation identifier that is sent as
// X-Device-ID on every request.
func (c *Client) SetDeviceID(id string) {
	c.deviceID = id
}

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/user/login", "", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, req api.SignupRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/user/signup", "", "", req, nil); err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}
	return nil
}

// VerifyAccount confirms a freshly registered account with the emailed code
func (c *Client) VerifyAccount(ctx context.Context, req api.VerifyAccountRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/user/verify-account", "", "", req, nil); err != nil {
		return fmt.Errorf("verify account request failed: %w", err)
	}
	return nil
}

// ForgotPassword requests a password-reset code
func (c *Client) ForgotPassword(ctx context.Context, req api.ForgotPasswordRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/user/forgot-password", "", "", req, nil); err != nil {
		return fmt.Errorf("forgot password request failed: %w", err)
	}
	return nil
}

// VerifyCode checks a password-reset code
func (c *Client) VerifyCode(ctx context.Context, req api.VerifyCodeRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/user/verify-code", "", "", req, nil); err != nil {
		return fmt.Errorf("verify code request failed: %w", err)
	}
	return nil
}

// ChangePassword sets a new password after code verification
func (c *Client) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if err := c.doRequest(ctx, http.MethodPatch, "/user/change-password", "", "", req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// UserInfo fetches the current profile. The payload is returned raw because
// the backend answers with either a bare object or a one-element array;
// normalization happens at the session boundary.
func (c *Client) UserInfo(ctx context.Context, token string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.doRequest(ctx, http.MethodGet, "/user/info", token, "", nil, &raw)
	if err != nil {
		return nil, fmt.Errorf("user info request failed: %w", err)
	}
	return raw, nil
}

// EditUser updates profile fields
func (c *Client) EditUser(ctx context.Context, token, userID string, req api.EditUserRequest) error {
	path := fmt.Sprintf("/user/edit/%s", userID)
	if err := c.doRequest(ctx, http.MethodPatch, path, token, "", req, nil); err != nil {
		return fmt.Errorf("edit user request failed: %w", err)
	}
	return nil
}

// GetCloset lists the user's saved sneakers
func (c *Client) GetCloset(ctx context.Context, token, userID string) (*api.ClosetResponse, error) {
	var resp api.ClosetResponse
	err := c.doRequest(ctx, http.MethodGet, "/closet", token, userID, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("closet request failed: %w", err)
	}
	return &resp, nil
}

// AddToCloset saves a sneaker to the user's closet. Non-2xx responses come
// back as *StatusError so the caller can treat 400 as "already saved".
func (c *Client) AddToCloset(ctx context.Context, token, userID string, req api.AddClosetRequest) error {
	return c.doRequest(ctx, http.MethodPost, "/closet", token, userID, req, nil)
}

// GetOutfits lists the user's outfits
func (c *Client) GetOutfits(ctx context.Context, token string) ([]models.Outfit, error) {
	var outfits []models.Outfit
	err := c.doRequest(ctx, http.MethodGet, "/outfit", token, "", nil, &outfits)
	if err != nil {
		return nil, fmt.Errorf("outfit request failed: %w", err)
	}
	return outfits, nil
}

// doRequest performs an HTTP request against the backend. token and userID
// are optional; when set they become the Authorization and X-User-ID
// headers. Non-2xx responses are returned as *StatusError with the server's
// message when the body carries one.
func (c *Client) doRequest(ctx context.Context, method, path, token, userID string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			if errResp.Message != "" {
				statusErr.Message = errResp.Message
			} else {
				statusErr.Message = errResp.Error
			}
		}
		if statusErr.Message == "" {
			statusErr.Message = string(respBody)
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
