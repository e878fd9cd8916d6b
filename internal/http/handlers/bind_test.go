package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/domain/medicine"
	"github.com/medixpro/medixpro/internal/domain/room"
	"github.com/medixpro/medixpro/internal/http/handlers"
)

type bindErrorResponse struct {
	Error   string `json:"error"`
	Details struct {
		JSON   string                `json:"json"`
		Field  string                `json:"field"`
		Fields []handlers.FieldError `json:"fields"`
	} `json:"details"`
}

func TestBindJSON_ValidationErrorsUseJSONFieldNames(t *testing.T) {
	r := gin.New()
	r.POST("/medicines", func(ctx *gin.Context) {
		var req medicine.CreateMedicineRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/medicines", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Error != "Invalid request body" {
		t.Fatalf("unexpected error message: %s", resp.Error)
	}

	wantRules := map[string]string{
		"name":  "min",
		"price": "required",
	}

	found := map[string]handlers.FieldError{}
	for _, fieldErr := range resp.Details.Fields {
		found[fieldErr.Field] = fieldErr
	}

	for field, rule := range wantRules {
		fieldErr, ok := found[field]
		if !ok {
			t.Fatalf("missing field error for %q: %+v", field, resp.Details.Fields)
		}
		if fieldErr.Rule != rule {
			t.Fatalf("field %q rule mismatch: got %q want %q", field, fieldErr.Rule, rule)
		}
		if fieldErr.Message == "" {
			t.Fatalf("field %q should include a non-empty message", field)
		}
	}
}

func TestBindJSON_TypeMismatchUsesJSONFieldNames(t *testing.T) {
	r := gin.New()
	r.POST("/medicines", func(ctx *gin.Context) {
		var req medicine.CreateMedicineRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	body := `{"name":"Paracetamol","price":4.5,"stock":"ten"}`
	req := httptest.NewRequest(http.MethodPost, "/medicines", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Details.JSON != "invalid_json_type" {
		t.Fatalf("expected invalid_json_type, got %q", resp.Details.JSON)
	}
	if resp.Details.Field != "stock" {
		t.Fatalf("expected detail field to be stock, got %q", resp.Details.Field)
	}
	if len(resp.Details.Fields) == 0 {
		t.Fatalf("expected at least one field error in details.fields")
	}

	fieldErr := resp.Details.Fields[0]
	if fieldErr.Field != "stock" {
		t.Fatalf("expected fields[0].field=stock, got %q", fieldErr.Field)
	}
	if fieldErr.Rule != "type" {
		t.Fatalf("expected fields[0].rule=type, got %q", fieldErr.Rule)
	}
	if fieldErr.Message == "" {
		t.Fatalf("expected non-empty fields[0].message")
	}
}

func TestBindJSON_AllotmentRequestRules(t *testing.T) {
	r := gin.New()
	r.POST("/room-allotments", func(ctx *gin.Context) {
		var req room.CreateAllotmentRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	body := `{"roomId": "not-a-uuid", "patientId": "also-not-a-uuid"}`
	req := httptest.NewRequest(http.MethodPost, "/room-allotments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	wantRules := map[string]string{
		"roomId":          "uuid",
		"patientId":       "uuid",
		"patientName":     "required",
		"attendingDoctor": "required",
	}

	found := map[string]handlers.FieldError{}
	for _, fieldErr := range resp.Details.Fields {
		found[fieldErr.Field] = fieldErr
	}

	for field, rule := range wantRules {
		fieldErr, ok := found[field]
		if !ok {
			t.Fatalf("missing field error for %q: %+v", field, resp.Details.Fields)
		}
		if fieldErr.Rule != rule {
			t.Fatalf("field %q rule mismatch: got %q want %q", field, fieldErr.Rule, rule)
		}
	}

	if found["roomId"].Message != "must be a valid uuid" {
		t.Fatalf("unexpected uuid message: %q", found["roomId"].Message)
	}
}

func TestBindJSON_MalformedJSONSyntax(t *testing.T) {
	r := gin.New()
	r.POST("/medicines", func(ctx *gin.Context) {
		var req medicine.CreateMedicineRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/medicines", bytes.NewBufferString(`{"name": "Paracetamol",`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}
