// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/testutil"
)

func TestHealth(t *testing.T) {
	handler := NewStatusHandler()

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "Genememetor is up and running!" {
		t.Errorf("Unexpected status message: %q", resp.Status)
	}
	if resp.Uptime == "" {
		t.Error("Expected an uptime string")
	}
}

func TestRoot(t *testing.T) {
	handler := NewStatusHandler()

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "genememetor API v1" {
		t.Errorf("Unexpected body: %q", w.Body.String())
	}
}
