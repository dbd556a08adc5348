package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"mortgage-api/repository"
	"mortgage-api/service"
)

func newTestHandler() *MortgageHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := service.NewMortgageService(repository.NewMockCache(), log)
	return NewMortgageHandler(svc, log)
}

func postJSON(path string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"purchase_price": 300000,
		"down_payment_percentage": 20,
		"annual_interest_rate": 6.5,
		"loan_term_years": 30,
		"annual_tax_rate": 1.2,
		"annual_insurance_rate": 0.35,
		"monthly_hoa_fee": 0
	}`)

	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp struct {
		Success             bool    `json:"success"`
		Timestamp           string  `json:"timestamp"`
		LoanAmount          float64 `json:"loan_amount"`
		DownPayment         float64 `json:"down_payment"`
		TotalMonthlyPayment float64 `json:"total_monthly_payment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if !resp.Success {
		t.Errorf("expected success true")
	}
	if resp.Timestamp == "" {
		t.Errorf("expected a timestamp")
	}
	if resp.LoanAmount != 240000 {
		t.Errorf("expected loan_amount 240000, got %v", resp.LoanAmount)
	}
	if resp.DownPayment != 60000 {
		t.Errorf("expected down_payment 60000, got %v", resp.DownPayment)
	}
	if resp.TotalMonthlyPayment < 1904.45 || resp.TotalMonthlyPayment > 1904.47 {
		t.Errorf("expected total_monthly_payment ~1904.46, got %v", resp.TotalMonthlyPayment)
	}
}

func TestCalculateHandler_AppliesDefaults(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", []byte(`{"purchase_price": 300000}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		AnnualInterestRate float64 `json:"annual_interest_rate"`
		LoanTermYears      int     `json:"loan_term_years"`
		DownPayment        float64 `json:"down_payment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.AnnualInterestRate != service.DefaultAnnualInterestRate {
		t.Errorf("expected default rate %v, got %v", service.DefaultAnnualInterestRate, resp.AnnualInterestRate)
	}
	if resp.LoanTermYears != service.DefaultLoanTermYears {
		t.Errorf("expected default term %d, got %d", service.DefaultLoanTermYears, resp.LoanTermYears)
	}
	if resp.DownPayment != 60000 {
		t.Errorf("expected default 20%% down payment of 60000, got %v", resp.DownPayment)
	}
}

func TestCalculateHandler_FieldAliases(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"purchase_price": 300000, "annual_rate": 5, "loan_term": 15}`)
	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		AnnualInterestRate float64 `json:"annual_interest_rate"`
		LoanTermYears      int     `json:"loan_term_years"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.AnnualInterestRate != 5 {
		t.Errorf("expected annual_rate alias to apply, got %v", resp.AnnualInterestRate)
	}
	if resp.LoanTermYears != 15 {
		t.Errorf("expected loan_term alias to apply, got %d", resp.LoanTermYears)
	}
}

func TestCalculateHandler_MissingPrice(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", []byte(`{"loan_term_years": 30}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Errorf("expected success false")
	}
	if resp.Error == "" {
		t.Errorf("expected an error message")
	}
}

func TestCalculateHandler_InvalidTerm(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"purchase_price": 300000, "loan_term_years": 0}`)
	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/calculate", nil)
	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadJSON(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", []byte(`{invalid-json}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateHandler_UnknownField(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"purchase_price": 300000, "porchase_price": 1}`)
	w := httptest.NewRecorder()
	handler.Calculate(w, postJSON("/api/calculate", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", w.Code)
	}
}

func TestCalculateHandler_WrongContentType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/calculate",
		bytes.NewBufferString("purchase_price=300000"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}
