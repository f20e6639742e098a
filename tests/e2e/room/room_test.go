//go:build e2e

package room_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type RoomSuite struct {
	e2e.SharedSuite
}

func (s *RoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) TestCreateRoom() {
	s.Run("Normal case: room is created and listed", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, map[string]any{
			"room_number":    101,
			"type":           "Deluxe",
			"price_per_hour": 500,
		})

		var created response.RoomEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := &response.RoomResponse{RoomNumber: 101, Type: "Deluxe", PricePerHour: 500}
		opts := cmpopts.IgnoreFields(response.RoomResponse{}, "ID", "CreatedAt")
		if diff := cmp.Diff(want, created.Room, opts); diff != "" {
			t.Errorf("room mismatch (-want +got):\n%s", diff)
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)
		var list response.RoomListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list.Rooms, 1)
		assert.Equal(t, created.Room.ID, list.Rooms[0].ID)
	})

	s.Run("Error case: duplicate room number", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, 101, "Deluxe", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, map[string]any{
			"room_number":    101,
			"type":           "Standard",
			"price_per_hour": 200,
		})

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "room_number already exists")
	})

	s.Run("Error case: unknown room type", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, map[string]any{
			"room_number":    103,
			"type":           "Penthouse",
			"price_per_hour": 900,
		})

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "type must be one of 'Standard', 'Deluxe', 'Superior'")
	})

	s.Run("Error case: room number beyond the storable range", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, 2147483647, "Deluxe", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, map[string]any{
			"room_number":    3000000000,
			"type":           "Standard",
			"price_per_hour": 200,
		})

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "room_number must be a positive integer")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)
		var list response.RoomListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list.Rooms, 1)
		assert.Equal(t, 2147483647, list.Rooms[0].RoomNumber)
	})

	s.Run("Error case: non-positive rate", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, map[string]any{
			"room_number":    104,
			"type":           "Standard",
			"price_per_hour": 0,
		})

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *RoomSuite) TestListRooms() {
	s.Run("Normal case: empty", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"rooms":[]}`, w.Body.String())
	})

	s.Run("Normal case: ordered by room number", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, 201, "Superior", 800)
		dbtest.CreateTestRoom(t, s.DB, 101, "Deluxe", 500)
		dbtest.CreateTestRoom(t, s.DB, 102, "Standard", 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var list response.RoomListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		got := make([]int, len(list.Rooms))
		for i, r := range list.Rooms {
			got[i] = r.RoomNumber
		}
		assert.Equal(t, []int{101, 102, 201}, got)
	})
}

func (s *RoomSuite) TestHealth() {
	s.Run("Normal case: readiness reaches the database", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/health/ready", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
