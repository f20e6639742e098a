//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/bookings", s.handler.List)
	s.router.POST("/api/bookings", s.handler.Create)
	s.router.PUT("/api/bookings/:id", s.handler.Update)
	s.router.DELETE("/api/bookings/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	id := uuid.New()
	missingFields := commands.ErrMissingFields.Error()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildCreateInput()).
			Return(b.BuildResult(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Booking)
		s.Equal(id.String(), body.Booking.ID)
		s.Equal(int64(1500), body.Booking.Price)
		s.Equal("active", body.Booking.Status)
		s.True(b.Start.Equal(body.Booking.StartTime))
	})

	s.Run("success: accepts datetime-local timestamps", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildCreateInput()).
			Return(b.BuildResult(id), nil).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("start_time", "2030-03-10T10:00"),
			testutil.Field("end_time", "2030-03-10T13:00"),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	missing := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing user_email", mutate: testutil.Field("user_email", nil)},
		{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
		{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
		{name: "missing end_time", mutate: testutil.Field("end_time", nil)},
		{name: "blank user_email", mutate: testutil.Field("user_email", "  ")},
		{name: "room_id not an id", mutate: testutil.Field("room_id", "room-101")},
		{name: "unparsable start_time", mutate: testutil.Field("start_time", "next monday")},
		{name: "numeric end_time", mutate: testutil.Field("end_time", 1700000000)},
	}

	s.Run("error: 400 Bad Request on missing or invalid fields", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, missingFields)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"user_email":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, missingFields)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "end before start",
				commandsError:  errs.Mark(booking.ErrInvalidTimeSlot, errs.ErrInvalidInput),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "start_time must be before end_time",
			},
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "overlap",
				commandsError:  errs.Mark(errors.New("exclusion violation"), commands.ErrBookingConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Overlapping booking exists for this room and time range",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.Mark(errors.New("dial tcp"), commands.ErrStoreUnavailable),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Booking store is unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/api/bookings/" + id.String()
	b := builder.NewBookingBuilder()

	s.Run("success: forwards only supplied fields", func() {
		newEnd := b.Start.Add(5 * time.Hour)
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, commands.UpdateBookingInput{EndTime: &newEnd}).
			Return(b.With(func(b *builder.BookingBuilder) { b.End = newEnd }).BuildResult(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"end_time": newEnd.Format(time.RFC3339)})

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2500), body.Booking.Price)
	})

	s.Run("success: explicit null keeps the stored value", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, commands.UpdateBookingInput{}).
			Return(b.BuildResult(id), nil).Times(1)

		requestMap := map[string]any{}
		testutil.Null("user_email")(requestMap)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/42", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, reqdto.ErrInvalidBookingID.Error())
	})

	s.Run("error: 400 on unparsable times", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"start_time": "noon"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid dates")
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"room_id": "abc"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, reqdto.ErrInvalidRoomID.Error())
	})

	s.Run("error: 400 on non-object body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `[1,2]`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request body")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "already cancelled", commandsError: errs.Mark(booking.ErrBookingCancelled, errs.ErrConflict), expectedStatus: http.StatusConflict, expectedMsg: "booking is already cancelled"},
			{name: "status not settable", commandsError: errs.Mark(booking.ErrStatusNotSettable, errs.ErrInvalidInput), expectedStatus: http.StatusBadRequest, expectedMsg: booking.ErrStatusNotSettable.Error()},
			{name: "overlap", commandsError: commands.ErrBookingConflict, expectedStatus: http.StatusConflict, expectedMsg: commands.ErrBookingConflict.Error()},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), id, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "active"})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/bookings/" + id.String()
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled })

	s.Run("success: returns booking with refund", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(&commands.CancelBookingResult{Booking: *b.BuildResult(id), RefundPercent: 100, RefundAmount: 1500}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Booking.Status)
		s.Equal(100, body.RefundPercent)
		s.Equal(int64(1500), body.RefundAmount)
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, reqdto.ErrInvalidBookingID.Error())
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil, errs.Mark(booking.ErrBookingCancelled, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "booking is already cancelled")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"
	id := uuid.New()
	rb := builder.NewRoomBuilder()
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = rb.ID })

	s.Run("success: returns bookings with rooms", func() {
		item := &queries.BookingListItem{BookingView: b.BuildView(id), Room: rb.BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListBookingsInput{}).
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.Equal(id.String(), body.Bookings[0].ID)
		s.Require().NotNil(body.Bookings[0].Room)
		s.Equal(101, body.Bookings[0].Room.RoomNumber)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookings":[]}`, rec.Body.String())
	})

	s.Run("success: forwards filters", func() {
		number, roomType := 101, "Deluxe"
		from := time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListBookingsInput{RoomNumber: &number, RoomType: &roomType, StartFrom: &from}).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_number=101&room_type=Deluxe&start_time=2030-03-10", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed filters", func() {
		testCases := []struct {
			query string
			msg   string
		}{
			{query: "?room_number=abc", msg: reqdto.ErrInvalidRoomNumber.Error()},
			{query: "?start_time=yesterday", msg: reqdto.ErrInvalidStartTime.Error()},
			{query: "?end_time=later", msg: reqdto.ErrInvalidEndTime.Error()},
		}
		for _, tc := range testCases {
			s.Run(tc.query, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 500 when the store is down", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), queries.ErrReadUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Booking store is unavailable")
	})
}
