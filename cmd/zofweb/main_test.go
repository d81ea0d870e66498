package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postForm(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handleSolve(rec, req)
	return rec
}

func TestHandleSolve_Bisection(t *testing.T) {
	rec := postForm(t, url.Values{
		"method":     {"bisection"},
		"expression": {"x**2 - 2"},
		"param1":     {"0"},
		"param2":     {"2"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Final Root:") {
		t.Fatalf("expected a result block, got:\n%s", body)
	}
	if !strings.Contains(body, "1.41421") {
		t.Fatalf("expected sqrt(2) estimate in the page")
	}
}

func TestHandleSolve_BadBracketShowsError(t *testing.T) {
	rec := postForm(t, url.Values{
		"method":     {"bisection"},
		"expression": {"x**2 - 2"},
		"param1":     {"3"},
		"param2":     {"5"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("bad input should re-render the page, got status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bracket") {
		t.Fatalf("expected the no-bracket message in the page")
	}
}

func TestHandleSolve_MissingParameter(t *testing.T) {
	rec := postForm(t, url.Values{
		"method":     {"bisection"},
		"expression": {"x**2 - 2"},
		"param1":     {"0"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "param2 is required") {
		t.Fatalf("expected the missing-parameter message, got:\n%s", rec.Body.String())
	}
}

func TestHandleSolve_StaleSecondParamIgnored(t *testing.T) {
	// A one-parameter method must not be broken by a leftover param2
	// value in the form.
	rec := postForm(t, url.Values{
		"method":     {"newton_raphson"},
		"expression": {"x**2 - 2"},
		"df":         {"2*x"},
		"param1":     {"1"},
		"param2":     {"2"},
	})
	if !strings.Contains(rec.Body.String(), "Final Root:") {
		t.Fatalf("expected a result block, got:\n%s", rec.Body.String())
	}
}

func TestHandleSolve_ParseErrorShown(t *testing.T) {
	rec := postForm(t, url.Values{
		"method":     {"secant"},
		"expression": {"os.system"},
		"param1":     {"0"},
		"param2":     {"1"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown identifier") {
		t.Fatalf("expected a parse error message, got:\n%s", rec.Body.String())
	}
}

func TestHandleIndex_RendersForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handleIndex(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Bisection", "Regula Falsi", "Newton-Raphson", "Modified Secant"} {
		if !strings.Contains(body, want) {
			t.Fatalf("method %q missing from the form", want)
		}
	}
}

func TestHandleSolve_GetRedirects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/solve", nil)
	rec := httptest.NewRecorder()
	handleSolve(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}
}
