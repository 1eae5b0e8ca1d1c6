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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRoomRouter(store *inMemoryRoomStore) *mux.Router {
	service := application.NewRoomService(store, testTracer())
	handler := NewRoomHandler(service, testTracer())

	router := mux.NewRouter()
	router.HandleFunc("/rooms", handler.GetAll).Methods("GET")
	router.HandleFunc("/room/{id}", handler.Get).Methods("GET")
	return router
}

func listRooms(t *testing.T, router *mux.Router, target string) []*domain.Room {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for %s, got %d", target, rec.Code)
	}
	var rooms []*domain.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rooms
}

func TestGetRoomsCategoryFilter(t *testing.T) {
	store := &inMemoryRoomStore{rooms: []*domain.Room{
		{ID: primitive.NewObjectID(), Title: "Flat A", Category: "flat"},
		{ID: primitive.NewObjectID(), Title: "Shop B", Category: "shop"},
	}}
	router := newRoomRouter(store)

	if rooms := listRooms(t, router, "/rooms"); len(rooms) != 2 {
		t.Errorf("expected all rooms without category, got %d", len(rooms))
	}

	// "null" is the literal the web client sends when no category is picked.
	if rooms := listRooms(t, router, "/rooms?category=null"); len(rooms) != 2 {
		t.Errorf("expected category null to match no filter, got %d", len(rooms))
	}

	rooms := listRooms(t, router, "/rooms?category=flat")
	if len(rooms) != 1 || rooms[0].Title != "Flat A" {
		t.Errorf("unexpected filtered rooms: %+v", rooms)
	}
}

func TestGetRoomsUnknownCategoryReturnsEmptyArray(t *testing.T) {
	store := &inMemoryRoomStore{rooms: []*domain.Room{
		{ID: primitive.NewObjectID(), Category: "flat"},
	}}
	router := newRoomRouter(store)

	if rooms := listRooms(t, router, "/rooms?category=castle"); len(rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(rooms))
	}
}

func TestGetRoomRejectsMalformedID(t *testing.T) {
	router := newRoomRouter(&inMemoryRoomStore{})

	req := httptest.NewRequest("GET", "/room/not-a-hex-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetRoomByID(t *testing.T) {
	id := primitive.NewObjectID()
	store := &inMemoryRoomStore{rooms: []*domain.Room{
		{ID: id, Title: "Flat A"},
	}}
	router := newRoomRouter(store)

	req := httptest.NewRequest("GET", "/room/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var room domain.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &room); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if room.Title != "Flat A" {
		t.Errorf("unexpected room: %+v", room)
	}
}

func TestGetRoomAbsentReturnsNull(t *testing.T) {
	router := newRoomRouter(&inMemoryRoomStore{})

	req := httptest.NewRequest("GET", "/room/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("expected null for absent room, got %q", body)
	}
}
