package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"github.com/gorilla/mux"
)

func newAnnouncementRouter(store *inMemoryAnnouncementStore) *mux.Router {
	service := application.NewAnnouncementService(store, testTracer(), testLogger())
	handler := NewAnnouncementHandler(service, testTracer())

	router := mux.NewRouter()
	router.HandleFunc("/announcement", handler.Create).Methods("POST")
	router.HandleFunc("/getAnnouncement", handler.GetAll).Methods("GET")
	return router
}

func TestCreateAnnouncementThenList(t *testing.T) {
	store := &inMemoryAnnouncementStore{}
	router := newAnnouncementRouter(store)

	body := `{"title":"Water outage","description":"Maintenance on Friday","by":"admin@example.com"}`
	req := httptest.NewRequest("POST", "/announcement", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var created domain.Announcement
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-side creation time")
	}

	listReq := httptest.NewRequest("GET", "/getAnnouncement", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	var announcements []*domain.Announcement
	if err := json.Unmarshal(listRec.Body.Bytes(), &announcements); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(announcements) != 1 || announcements[0].Title != "Water outage" {
		t.Errorf("unexpected announcements: %+v", announcements)
	}
}

func TestCreateAnnouncementRejectsMalformedBody(t *testing.T) {
	router := newAnnouncementRouter(&inMemoryAnnouncementStore{})

	req := httptest.NewRequest("POST", "/announcement", strings.NewReader(`{"title":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetAnnouncementsEmptyStoreReturnsEmptyArray(t *testing.T) {
	router := newAnnouncementRouter(&inMemoryAnnouncementStore{})

	req := httptest.NewRequest("GET", "/getAnnouncement", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %q", body)
	}
}
