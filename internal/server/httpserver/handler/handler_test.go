// Package handler provides HTTP request handlers for idmint.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/sylvite/idmint-go/internal/core/domain"
	"github.com/sylvite/idmint-go/internal/core/service"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	svc, err := service.NewMintService([]domain.MintProfile{
		{Name: "default", Length: 24, Algorithm: "sha3-256"},
		{Name: "wide", Length: 32, Algorithm: "sha-256"},
	}, nil, nil)
	if err != nil {
		t.Fatalf("NewMintService() error = %v", err)
	}

	return New(svc, nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, *Response) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reqBody)
	h.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, &resp
}

func TestHandleMintKeys_Default(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "POST", "/v1/keys", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Code != "OK" {
		t.Fatalf("envelope code = %q, want OK", resp.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var mint MintKeysResponse
	if err := json.Unmarshal(data, &mint); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}

	if mint.Profile != "default" {
		t.Errorf("profile = %q, want default", mint.Profile)
	}
	if len(mint.Keys) != 1 {
		t.Fatalf("keys = %d, want 1", len(mint.Keys))
	}
	if matched, _ := regexp.MatchString(`^[a-z][0-9a-z]{23}$`, mint.Keys[0]); !matched {
		t.Errorf("key %q has wrong format", mint.Keys[0])
	}
}

func TestHandleMintKeys_Batch(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "POST", "/v1/keys", MintKeysRequest{Profile: "wide", Count: 10})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var mint MintKeysResponse
	if err := json.Unmarshal(data, &mint); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(mint.Keys) != 10 {
		t.Errorf("keys = %d, want 10", len(mint.Keys))
	}
	for _, key := range mint.Keys {
		if len(key) != 32 {
			t.Errorf("key length = %d, want 32", len(key))
		}
	}
}

func TestHandleMintKeys_Errors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		req        any
		wantStatus int
		wantCode   string
	}{
		{"unknown profile", MintKeysRequest{Profile: "nope"}, http.StatusNotFound, "IM-PROF-4040"},
		{"count too large", MintKeysRequest{Count: 100000}, http.StatusBadRequest, "IM-ARG-1003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doJSON(t, h, "POST", "/v1/keys", tt.req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("envelope code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleMintKeys_MalformedBody(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/keys", bytes.NewBufferString("{not json"))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleListProfiles(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "GET", "/v1/profiles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var list ListProfilesResponse
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(list.Profiles) != 2 {
		t.Fatalf("profiles = %d, want 2", len(list.Profiles))
	}
	if list.Profiles[0].Name != "default" || list.Profiles[1].Name != "wide" {
		t.Errorf("profiles order = %v", list.Profiles)
	}
}

func TestHandleGetProfile(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "GET", "/v1/profiles/wide", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var p ProfileResponse
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if p.Name != "wide" || p.Length != 32 || p.Algorithm != "sha-256" {
		t.Errorf("profile = %+v", p)
	}
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "GET", "/v1/profiles/ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if resp.Code != "IM-PROF-4040" {
		t.Errorf("envelope code = %q, want IM-PROF-4040", resp.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := doJSON(t, h, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Code != "OK" {
		t.Errorf("envelope code = %q, want OK", resp.Code)
	}
}

func TestErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"IM-PROF-4040", http.StatusNotFound},
		{"IM-PROF-4090", http.StatusConflict},
		{"IM-SYS-4290", http.StatusTooManyRequests},
		{"IM-ARG-1003", http.StatusBadRequest},
		{"IM-PROF-4001", http.StatusBadRequest},
		{"IM-SYS-5000", http.StatusInternalServerError},
		{"IM-UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := errorCodeToHTTPStatus(tt.code); got != tt.want {
			t.Errorf("errorCodeToHTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
