package converter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"infix-postfix/internal/notation"
	"infix-postfix/internal/observability"
	"infix-postfix/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing converter metrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, path, body), h)
}

func TestConvertReturnsPostfixAndSteps(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/convert", `{"expression":"A + B * C"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var resp ConvertResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Infix != "A+B*C" {
		t.Fatalf("expected infix %q, got %q", "A+B*C", resp.Infix)
	}
	if resp.Postfix != "ABC*+" {
		t.Fatalf("expected postfix %q, got %q", "ABC*+", resp.Postfix)
	}

	want := notation.Convert("A+B*C").Steps
	if len(resp.Steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(resp.Steps))
	}
	for i := range want {
		if resp.Steps[i].Action != want[i].Action || resp.Steps[i].Postfix != want[i].Postfix {
			t.Fatalf("step %d: expected %+v, got %+v", i, want[i], resp.Steps[i])
		}
	}
}

func TestConvertStepStackIsAlwaysAnArray(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/convert", `{"expression":"A"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if !strings.Contains(w.Body.String(), `"stack":[]`) {
		t.Fatalf("expected empty stack to encode as [], got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"scannedChar":"A"`) {
		t.Fatalf("expected scannedChar key in %s", w.Body.String())
	}
}

func TestConvertRejectsInvalidExpressions(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		expression string
		want       string
	}{
		{expression: "", want: "Please enter an expression"},
		{expression: "A+B)*C", want: "Unmatched closing parenthesis"},
		{expression: "(A+B", want: "Unmatched opening parenthesis"},
		{expression: "A+B#C", want: "Invalid character: '#'"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			w := post(t, h, "/api/convert", testutil.ExpressionBody(t, tc.expression))
			testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body["error"] != tc.want {
				t.Fatalf("expected error %q, got %q", tc.want, body["error"])
			}
			if _, ok := body["postfix"]; ok {
				t.Fatal("did not expect a conversion result for invalid input")
			}
		})
	}
}

func TestConvertRejectsMalformedBody(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/convert", `{"expression":`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["error"] != "invalid request body" {
		t.Fatalf("expected error %q, got %q", "invalid request body", body["error"])
	}
}

func TestConvertLogsConversion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	h := newTestRouter(t)
	w := post(t, h, "/api/convert", `{"expression":"A^B^C"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("expression converted").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 conversion log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["postfix"] != "AB^C^" {
		t.Fatalf("expected postfix %q, got %#v", "AB^C^", fields["postfix"])
	}
	if fields["steps"] != int64(7) {
		t.Fatalf("expected 7 steps, got %#v", fields["steps"])
	}
}

func TestValidate(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		expression string
		valid      bool
		err        string
	}{
		{expression: "(A+B)*C", valid: true},
		{expression: " ", err: "Please enter an expression"},
		{expression: ")A(", err: "Unmatched closing parenthesis"},
		{expression: "A!", err: "Invalid character: '!'"},
		{expression: "((A)", err: "Unmatched opening parenthesis"},
	}

	for _, tc := range tests {
		t.Run(tc.expression, func(t *testing.T) {
			w := post(t, h, "/api/validate", testutil.ExpressionBody(t, tc.expression))
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var resp ValidateResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)

			if resp.Valid != tc.valid || resp.Error != tc.err {
				t.Fatalf("expected valid=%t error=%q, got valid=%t error=%q", tc.valid, tc.err, resp.Valid, resp.Error)
			}
		})
	}
}

func TestExamples(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/examples", nil)
	w := testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ExamplesResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if len(resp.Examples) != 6 {
		t.Fatalf("expected 6 examples, got %d", len(resp.Examples))
	}
	if resp.Examples[4] != "A^B^C" {
		t.Fatalf("expected example %q, got %q", "A^B^C", resp.Examples[4])
	}
}
