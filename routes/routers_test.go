package routes

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/dto"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/response"
	"github.com/leenx3/Stayease-hotel/services/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	return "https://img.example.com/" + folder + "/avatar.png", nil
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	mr     *miniredis.Miniredis
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Room{}, &models.Booking{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	router := gin.New()
	SetupRoutes(router, db, rdb, nil, nil, Options{
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Now:      func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) },
		Uploader: fakeUploader{},
	})
	return &testServer{router: router, db: db, mr: mr}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var res response.Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w, res
}

// decode chuyển data của response về kiểu cụ thể
func decode(t *testing.T, data interface{}, target interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

func (s *testServer) seedRoom(t *testing.T, number, roomType string, price float64, capacity int) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, RoomType: roomType, Price: price, Capacity: capacity, IsAvailable: true}
	require.NoError(t, s.db.Create(&room).Error)
	return room
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodGet, "/ping", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "101", "Deluxe", 100, 2)

	w, res := s.do(t, http.MethodPost, "/api/v1/bookings", dto.SubmitBookingRequest{
		Name: "Anna", Email: "anna@example.com", RoomType: "deluxe",
		CheckInDate: "2024-07-01", CheckOutDate: "2024-07-04", Guests: 2,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.BookingCreatedResponse
	decode(t, res.Data, &created)
	require.NotZero(t, created.ID)

	w, res = s.do(t, http.MethodGet, "/api/v1/bookings/"+itoa(created.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.BookingResponse
	decode(t, res.Data, &detail)
	require.Equal(t, 300.0, detail.TotalPrice)
	require.Equal(t, 3, detail.Nights)
	require.Equal(t, room.ID, detail.Room.ID)
	require.Equal(t, "anna@example.com", detail.Customer.Email)

	w, res = s.do(t, http.MethodGet, "/api/v1/bookings/latest?limit=5", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed dto.LatestBookingsResponse
	decode(t, res.Data, &feed)
	require.Len(t, feed.Bookings, 1)
	require.Equal(t, "Anna", feed.Bookings[0].CustomerName)

	w, _ = s.do(t, http.MethodGet, "/api/v1/bookings/999", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/bookings/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBookingFormKeepsInputOnError(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "101", "Standard", 100, 2)

	form := url.Values{}
	form.Set("name", "Anna")
	form.Set("email", "anna@example.com")
	form.Set("roomId", itoa(room.ID))
	form.Set("checkInDate", "2024-07-01")
	form.Set("checkOutDate", "2024-07-03")
	form.Set("guests", "3")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var res struct {
		Code int `json:"code"`
		Data struct {
			ErrorCode string                   `json:"errorCode"`
			Input     dto.SubmitBookingRequest `json:"input"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 0, res.Code)
	require.Equal(t, "CAPACITY_EXCEEDED", res.Data.ErrorCode)
	require.Equal(t, "Anna", res.Data.Input.Name)
	require.Equal(t, 3, res.Data.Input.Guests.Int())
}

func TestSubmitBookingErrorStatuses(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "101", "Standard", 100, 2)
	roomID := room.ID
	missing := uint(404)

	cases := []struct {
		name   string
		req    dto.SubmitBookingRequest
		status int
		code   string
	}{
		{"missing email", dto.SubmitBookingRequest{Name: "Anna", RoomID: &roomID, CheckInDate: "2024-07-01", CheckOutDate: "2024-07-02"}, http.StatusBadRequest, "MISSING_FIELD"},
		{"bad date", dto.SubmitBookingRequest{Name: "Anna", Email: "a@example.com", RoomID: &roomID, CheckInDate: "07/01/2024", CheckOutDate: "2024-07-02"}, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"unknown room", dto.SubmitBookingRequest{Name: "Anna", Email: "a@example.com", RoomID: &missing, CheckInDate: "2024-07-01", CheckOutDate: "2024-07-02"}, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, res := s.do(t, http.MethodPost, "/api/v1/bookings", tc.req, nil)
			require.Equal(t, tc.status, w.Code)
			var data response.ErrorData
			decode(t, res.Data, &data)
			require.Equal(t, tc.code, string(data.ErrorCode))
		})
	}

	_, _ = s.do(t, http.MethodPost, "/api/v1/bookings", dto.SubmitBookingRequest{
		Name: "Anna", Email: "a@example.com", RoomID: &roomID, CheckInDate: "2024-07-01", CheckOutDate: "2024-07-03",
	}, nil)
	w, res := s.do(t, http.MethodPost, "/api/v1/bookings", dto.SubmitBookingRequest{
		Name: "Bob", Email: "b@example.com", RoomID: &roomID, CheckInDate: "2024-07-02", CheckOutDate: "2024-07-04",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	var data response.ErrorData
	decode(t, res.Data, &data)
	require.Equal(t, "ROOM_UNAVAILABLE", string(data.ErrorCode))
}

func TestSubmitBookingNumericGuests(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "101", "Standard", 100, 2)

	w, res := s.do(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"name": "Anna", "email": "anna@example.com", "roomId": room.ID,
		"checkInDate": "2024-07-01", "checkOutDate": "2024-07-03", "guests": 2,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.BookingCreatedResponse
	decode(t, res.Data, &created)
	var booking models.Booking
	require.NoError(t, s.db.First(&booking, created.ID).Error)
	require.Equal(t, 2, booking.Guests)

	w, res = s.do(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "roomId": room.ID,
		"checkInDate": "2024-08-01", "checkOutDate": "2024-08-03", "guests": 3,
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var failed struct {
		ErrorCode string                   `json:"errorCode"`
		Input     dto.SubmitBookingRequest `json:"input"`
	}
	decode(t, res.Data, &failed)
	require.Equal(t, "CAPACITY_EXCEEDED", failed.ErrorCode)
	require.Equal(t, 3, failed.Input.Guests.Int())

	w, _ = s.do(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"name": "Chi", "email": "chi@example.com", "roomId": room.ID,
		"checkInDate": "2024-09-01", "checkOutDate": "2024-09-03", "guests": "many",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestListRoomsKeepsSessionFilters(t *testing.T) {
	s := newTestServer(t)
	s.seedRoom(t, "1", "Deluxe", 200, 4)
	s.seedRoom(t, "2", "Standard", 80, 2)
	s.seedRoom(t, "3", "Standard", 90, 1)

	w, res := s.do(t, http.MethodGet, "/api/v1/rooms?roomType=standard&capacity=abc", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, session)
	var rooms []dto.RoomResponse
	decode(t, res.Data, &rooms)
	require.Len(t, rooms, 2)

	w, res = s.do(t, http.MethodGet, "/api/v1/rooms?guests=2&keepFilters=true", nil, map[string]string{"X-Session-ID": session})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, res.Data, &rooms)
	require.Len(t, rooms, 1)
	require.Equal(t, "2", rooms[0].RoomNumber)
	require.True(t, rooms[0].IsAvailable)

	w, res = s.do(t, http.MethodGet, "/api/v1/rooms?guests=2", nil, map[string]string{"X-Session-ID": session})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, res.Data, &rooms)
	require.Len(t, rooms, 2)

	w, _ = s.do(t, http.MethodDelete, "/api/v1/rooms/filters", nil, map[string]string{"X-Session-ID": session})
	require.Equal(t, http.StatusOK, w.Code)
	w, res = s.do(t, http.MethodGet, "/api/v1/rooms?keepFilters=true", nil, map[string]string{"X-Session-ID": session})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, res.Data, &rooms)
	require.Len(t, rooms, 3)
}

func TestAdminBookingEndpoints(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "101", "Standard", 100, 2)
	roomID := room.ID

	var ids []uint
	for i, email := range []string{"anna@example.com", "bob@example.com"} {
		in := "2024-07-0" + itoa(uint(1+i*4))
		out := "2024-07-0" + itoa(uint(3+i*4))
		w, res := s.do(t, http.MethodPost, "/api/v1/bookings", dto.SubmitBookingRequest{
			Name: strings.Split(email, "@")[0], Email: email, RoomID: &roomID, CheckInDate: in, CheckOutDate: out,
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		var created dto.BookingCreatedResponse
		decode(t, res.Data, &created)
		ids = append(ids, created.ID)
	}

	w, res := s.do(t, http.MethodGet, "/api/v1/admin/bookings?page=0&limit=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, res.Pagination)
	require.Equal(t, 2, res.Pagination.Total)
	var dashboard dto.AdminDashboardResponse
	decode(t, res.Data, &dashboard)
	require.Len(t, dashboard.Bookings, 1)
	require.Equal(t, 400.0, dashboard.Income)

	w, res = s.do(t, http.MethodGet, "/api/v1/admin/bookings?page=0", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, res.Pagination)
	require.Equal(t, constants.DefaultPageLimit, res.Pagination.Limit)
	decode(t, res.Data, &dashboard)
	require.Len(t, dashboard.Bookings, 2)

	w, res = s.do(t, http.MethodGet, "/api/v1/admin/bookings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, res.Pagination)

	w, res = s.do(t, http.MethodPut, "/api/v1/admin/bookings/"+itoa(ids[0]), dto.EditBookingRequest{
		CheckInDate: "2024-07-04", CheckOutDate: "2024-07-06",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodPut, "/api/v1/admin/bookings/"+itoa(ids[0]), dto.EditBookingRequest{
		CheckInDate: "2024-07-01", CheckOutDate: "bad",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, res = s.do(t, http.MethodPut, "/api/v1/admin/bookings/"+itoa(ids[0]), dto.EditBookingRequest{
		CheckInDate: "2024-07-01", CheckOutDate: "2024-07-05",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var edited dto.BookingResponse
	decode(t, res.Data, &edited)
	require.Equal(t, 400.0, edited.TotalPrice)

	w, res = s.do(t, http.MethodPut, "/api/v1/admin/bookings/complete", dto.MarkCompletedRequest{IDs: ids}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var marked dto.MarkCompletedResponse
	decode(t, res.Data, &marked)
	require.Equal(t, int64(2), marked.Updated)

	w, _ = s.do(t, http.MethodPut, "/api/v1/admin/bookings/complete", dto.MarkCompletedRequest{}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, res = s.do(t, http.MethodGet, "/api/v1/admin/bookings?completed=true&search=bob", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, res.Data, &dashboard)
	require.Len(t, dashboard.Bookings, 1)
	require.Equal(t, "bob", dashboard.Bookings[0].Customer.Name)

	w, _ = s.do(t, http.MethodDelete, "/api/v1/admin/bookings/"+itoa(ids[1]), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, res = s.do(t, http.MethodGet, "/api/v1/admin/customers", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var customers []dto.CustomerResponse
	decode(t, res.Data, &customers)
	require.Len(t, customers, 1)
	require.Equal(t, "anna@example.com", customers[0].Email)
	require.Equal(t, int64(1), customers[0].BookingCount)
}

func TestAdminRoomEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, res := s.do(t, http.MethodPost, "/api/v1/admin/rooms", dto.CreateRoomRequest{
		RoomNumber: "301", RoomType: "Suite", Price: 250, Capacity: 3,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var room dto.RoomResponse
	decode(t, res.Data, &room)

	w, _ = s.do(t, http.MethodPost, "/api/v1/admin/rooms", dto.CreateRoomRequest{
		RoomNumber: "301", RoomType: "Suite", Price: 250,
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/v1/admin/rooms", map[string]interface{}{"roomType": "Suite"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	price := 275.0
	w, res = s.do(t, http.MethodPut, "/api/v1/admin/rooms/"+itoa(room.ID), dto.UpdateRoomRequest{Price: &price}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, res.Data, &room)
	require.Equal(t, 275.0, room.Price)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "room.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rooms/"+itoa(room.ID)+"/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "https://img.example.com/rooms/avatar.png")

	w, res = s.do(t, http.MethodGet, "/api/v1/admin/rooms", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []dto.RoomResponse
	decode(t, res.Data, &rooms)
	require.Len(t, rooms, 1)
	require.Equal(t, "https://img.example.com/rooms/avatar.png", rooms[0].Avatar)

	w, _ = s.do(t, http.MethodGet, "/api/v1/rooms/"+itoa(room.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/v1/admin/rooms/"+itoa(room.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/rooms/"+itoa(room.ID), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
