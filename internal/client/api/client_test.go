package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talariafits/talaria/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", req.Email)
		assert.Equal(t, "secret123", req.Password)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "token-abc"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
}

func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   api.ErrorResponse
		expectedErrMsg string
	}{
		{
			name:           "wrong credentials",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Message: "invalid credentials"},
			expectedErrMsg: "server error (401): invalid credentials",
		},
		{
			name:           "unverified account",
			statusCode:     http.StatusForbidden,
			responseBody:   api.ErrorResponse{Error: "account not verified"},
			expectedErrMsg: "server error (403): account not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.Login(context.Background(), api.LoginRequest{
				Email:    "ana@example.com",
				Password: "wrong",
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_UserInfo(t *testing.T) {
	// The backend answers with a one-element array; UserInfo must hand it
	// back untouched for the session layer to normalize.
	const body = `[{"_id":"u-1","name":"Ana","sneakerSize":9.5}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user/info", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	raw, err := client.UserInfo(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
}

func TestClient_EditUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/user/edit/u-1", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req api.EditUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "10", req.SneakerSize)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.EditUser(context.Background(), "token-abc", "u-1", api.EditUserRequest{
		ID:          "u-1",
		SneakerSize: "10",
	})

	assert.NoError(t, err)
}

func TestClient_GetCloset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/closet", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "u-1", r.Header.Get("X-User-ID"))

		_, _ = w.Write([]byte(`{"data":[{"snickerId":"s-1","snickerName":"Air Max 90","snickerPrice":120,"snickerSize":9.5}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetCloset(context.Background(), "token-abc", "u-1")

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "s-1", resp.Data[0].SneakerID)
	assert.Equal(t, "Air Max 90", resp.Data[0].Name)
	assert.Equal(t, 120.0, resp.Data[0].Price)
}

func TestClient_AddToCloset_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/closet", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "sneaker already in closet"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.AddToCloset(context.Background(), "token-abc", "u-1", api.AddClosetRequest{
		SneakerID: "s-1",
	})

	// The error must stay branchable by status code
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Equal(t, "sneaker already in closet", statusErr.Message)
}

func TestClient_DeviceIDHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "device-123", r.Header.Get("X-Device-ID"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetDeviceID("device-123")

	_, err := client.GetOutfits(context.Background(), "token-abc")
	require.NoError(t, err)
}

func TestClient_GetOutfits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/outfit", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"o-1","outfitName":"court fit","sneakerId":"s-1","imageUrl":"http://img"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	outfits, err := client.GetOutfits(context.Background(), "token-abc")

	require.NoError(t, err)
	require.Len(t, outfits, 1)
	assert.Equal(t, "o-1", outfits[0].ID)
	assert.Equal(t, "court fit", outfits[0].Name)
}
