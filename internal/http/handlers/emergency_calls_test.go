package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medixpro/medixpro/internal/domain/emergency"
	"github.com/medixpro/medixpro/internal/http/handlers"
	"github.com/medixpro/medixpro/internal/jobs"
	"github.com/medixpro/medixpro/internal/listing"
)

type fakeEmergencyCallsRepo struct {
	listFn         func(ctx context.Context, p listing.Params) ([]emergency.Call, int, error)
	createFn       func(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error)
	getFn          func(ctx context.Context, id string) (emergency.Call, error)
	updateFn       func(ctx context.Context, id string, req emergency.UpdateCallRequest) (emergency.Call, error)
	updateStatusFn func(ctx context.Context, id string, req emergency.UpdateStatusRequest) (emergency.Call, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeEmergencyCallsRepo) List(ctx context.Context, p listing.Params) ([]emergency.Call, int, error) {
	if f.listFn != nil {
		return f.listFn(ctx, p)
	}

	return nil, 0, nil
}

func (f *fakeEmergencyCallsRepo) Create(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}

	return emergency.Call{}, nil
}

func (f *fakeEmergencyCallsRepo) GetByID(ctx context.Context, id string) (emergency.Call, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}

	return emergency.Call{}, nil
}

func (f *fakeEmergencyCallsRepo) Update(ctx context.Context, id string, req emergency.UpdateCallRequest) (emergency.Call, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}

	return emergency.Call{}, nil
}

func (f *fakeEmergencyCallsRepo) UpdateStatus(ctx context.Context, id string, req emergency.UpdateStatusRequest) (emergency.Call, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, req)
	}

	return emergency.Call{}, nil
}

func (f *fakeEmergencyCallsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}

	return nil
}

// fake queue capturing enqueued jobs

type fakeEnqueuer struct {
	jobs      []jobs.Job
	enqueueFn func(ctx context.Context, j jobs.Job) error
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, j jobs.Job) error {
	if f.enqueueFn != nil {
		return f.enqueueFn(ctx, j)
	}

	f.jobs = append(f.jobs, j)

	return nil
}

const createCallBody = `{
	"patientName": "Ravi Kumar",
	"phone": "+91-98000-00000",
	"location": "12 MG Road, Bangalore",
	"emergencyType": "Cardiac",
	"priority": "Critical"
}`

func TestCreateEmergencyCallHandler_EnqueuesDispatchJob(t *testing.T) {
	now := time.Now().UTC()

	repo := &fakeEmergencyCallsRepo{
		createFn: func(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error) {
			return emergency.Call{
				ID:            "call-1",
				PatientName:   req.PatientName,
				Location:      req.Location,
				EmergencyType: req.EmergencyType,
				Priority:      req.Priority,
				Status:        "Pending",
				CallTime:      now,
				CreatedAt:     now,
				UpdatedAt:     now,
			}, nil
		},
	}

	queue := &fakeEnqueuer{}

	h := handlers.NewEmergencyCallsHandler(repo, queue, 10)

	r := setupRouter(http.MethodPost, "/emergency-calls", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/emergency-calls", bytes.NewBufferString(createCallBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("got %d enqueued jobs, want 1", len(queue.jobs))
	}

	j := queue.jobs[0]

	if j.Type != jobs.JobDispatchEmergencyCall {
		t.Fatalf("got job type %q, want %q", j.Type, jobs.JobDispatchEmergencyCall)
	}

	decoded, err := jobs.DecodePayload(j)

	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	payload, ok := decoded.(jobs.DispatchEmergencyCallPayload)

	if !ok {
		t.Fatalf("unexpected payload type %T", decoded)
	}

	if payload.CallID != "call-1" {
		t.Fatalf("got call id %q, want %q", payload.CallID, "call-1")
	}
	if payload.Location != "12 MG Road, Bangalore" {
		t.Fatalf("got location %q, want %q", payload.Location, "12 MG Road, Bangalore")
	}
}

func TestCreateEmergencyCallHandler_EnqueueFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEmergencyCallsRepo{
		createFn: func(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error) {
			return emergency.Call{ID: "call-2", PatientName: req.PatientName}, nil
		},
	}

	queue := &fakeEnqueuer{
		enqueueFn: func(ctx context.Context, j jobs.Job) error {
			return context.DeadlineExceeded
		},
	}

	h := handlers.NewEmergencyCallsHandler(repo, queue, 10)

	r := setupRouter(http.MethodPost, "/emergency-calls", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/emergency-calls", bytes.NewBufferString(createCallBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestCreateEmergencyCallHandler_NilQueue(t *testing.T) {
	repo := &fakeEmergencyCallsRepo{}

	h := handlers.NewEmergencyCallsHandler(repo, nil, 10)

	r := setupRouter(http.MethodPost, "/emergency-calls", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/emergency-calls", bytes.NewBufferString(createCallBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestUpdateEmergencyCallStatusHandler(t *testing.T) {
	ambulanceID := newUUID()

	var gotReq emergency.UpdateStatusRequest

	repo := &fakeEmergencyCallsRepo{
		updateStatusFn: func(ctx context.Context, id string, req emergency.UpdateStatusRequest) (emergency.Call, error) {
			gotReq = req
			return emergency.Call{ID: id, Status: req.Status, AmbulanceID: req.AmbulanceID}, nil
		},
	}

	h := handlers.NewEmergencyCallsHandler(repo, nil, 10)

	r := setupRouter(http.MethodPatch, "/emergency-calls/:id/status", h.UpdateStatus)

	body := `{"status": "Dispatched", "ambulanceId": "` + ambulanceID + `"}`
	req := httptest.NewRequest(http.MethodPatch, "/emergency-calls/call-3/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	if gotReq.Status != "Dispatched" {
		t.Fatalf("got status %q, want %q", gotReq.Status, "Dispatched")
	}
	if gotReq.AmbulanceID == nil || *gotReq.AmbulanceID != ambulanceID {
		t.Fatalf("ambulance id was not forwarded: %+v", gotReq.AmbulanceID)
	}

	t.Run("invalid_status_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/emergency-calls/call-3/status", bytes.NewBufferString(`{"status": "Teleported"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})
}
