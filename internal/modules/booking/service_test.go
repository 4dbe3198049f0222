package booking

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, hotelID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) TransitionStatus(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) MarkNoShow(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id string, refund decimal.Decimal, pay domain.PaymentStatus,
	reason string, by domain.CancelActor, at time.Time) (bool, error) {
	args := m.Called(ctx, id, refund, pay, reason, by, at)
	return args.Bool(0), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyStatusChanged(ctx context.Context, b *domain.Booking, previous domain.BookingStatus) error {
	args := m.Called(ctx, b, previous)
	return args.Error(0)
}

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository, notifs *MockNotificationSender) *Service {
	var sender NotificationSender
	if notifs != nil {
		sender = notifs
	}
	return NewService(bookings, rooms, sender, clock.Fixed{T: testNow})
}

func readyRoom() *domain.Room {
	return &domain.Room{
		ID:                10,
		HotelID:           5,
		RoomNumber:        "101",
		RoomType:          domain.RoomDouble,
		Capacity:          domain.RoomCapacity{Adults: 2, Children: 2},
		PricePerNight:     decimal.RequireFromString("180.00"),
		IsAvailable:       true,
		OperationalStatus: domain.RoomReady,
	}
}

func createReq() CreateBookingRequest {
	return CreateBookingRequest{
		HotelID:     5,
		RoomID:      10,
		CustomerID:  999,
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-13",
		Guests:      domain.Guests{Adults: 2, Children: 1},
		TotalAmount: decimal.RequireFromString("540.00"),
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockNotifs := new(MockNotificationSender)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyStatusChanged", mock.Anything, mock.Anything, domain.BookingStatus("")).Return(nil)

	service := newTestService(mockBookings, mockRooms, mockNotifs)

	b, err := service.CreateBooking(context.Background(), createReq())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.True(t, b.CheckOut.After(b.CheckIn))
	assert.True(t, b.RefundAmount.IsZero())
	mockNotifs.AssertExpectations(t)
}

func TestService_CreateBooking_PaidStartsConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockRooms, nil)

	req := createReq()
	req.PaymentStatus = string(domain.PaymentPaid)
	b, err := service.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestService_CreateBooking_Validation(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), nil)

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"checkout before checkin", func(r *CreateBookingRequest) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }},
		{"checkout equals checkin", func(r *CreateBookingRequest) { r.CheckOut = r.CheckIn }},
		{"unparseable date", func(r *CreateBookingRequest) { r.CheckIn = "June 10th" }},
		{"zero adults", func(r *CreateBookingRequest) { r.Guests.Adults = 0 }},
		{"negative children", func(r *CreateBookingRequest) { r.Guests.Children = -1 }},
		{"negative amount", func(r *CreateBookingRequest) { r.TotalAmount = decimal.NewFromInt(-5) }},
		{"check-in in the past", func(r *CreateBookingRequest) { r.CheckIn, r.CheckOut = "2026-04-20", "2026-04-22" }},
		{"unknown payment status", func(r *CreateBookingRequest) { r.PaymentStatus = "gratis" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createReq()
			tt.mutate(&req)
			_, err := service.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_CreateBooking_OverCapacity(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)

	service := newTestService(mockBookings, mockRooms, nil)

	req := createReq()
	req.Guests.Adults = 3
	_, err := service.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	blocking := domain.Booking{
		ID:       "existing-1",
		RoomID:   10,
		CheckIn:  day(2026, 6, 9),
		CheckOut: day(2026, 6, 11),
		Status:   domain.BookingConfirmed,
	}
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{blocking}, nil)

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())

	assert.ErrorIs(t, err, ErrConflict)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.Blocking, 1)
	assert.Equal(t, "existing-1", conflict.Blocking[0].ID)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_SharedBoundarySucceeds(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	// Existing stay checks out on June 10, the candidate checks in that day.
	existing := domain.Booking{
		ID:       "existing-1",
		RoomID:   10,
		CheckIn:  day(2026, 6, 7),
		CheckOut: day(2026, 6, 10),
		Status:   domain.BookingConfirmed,
	}
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{existing}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockRooms, nil)

	b, err := service.CreateBooking(context.Background(), createReq())
	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestService_CreateBooking_RoomUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	room := readyRoom()
	room.OperationalStatus = domain.RoomMaintenance
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_CreateBooking_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateBooking_LostRaceMapsToConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	// A concurrent create slipped between the pre-check and the insert.
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_CreateBooking_ExclusionViolationMapsToConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	// Concurrent insert on postgres: the exclusion constraint rejects the
	// loser with SQLSTATE 23P01.
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23P01", ConstraintName: "idx_no_room_overlap"})

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_CreateBooking_OtherPgErrorPassesThrough(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_bookings_room"})

	service := newTestService(mockBookings, mockRooms, nil)

	_, err := service.CreateBooking(context.Background(), createReq())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestService_Transition_ConfirmedToCheckedIn(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingConfirmed}, nil).Once()
	mockBookings.On("TransitionStatus", mock.Anything, id, domain.BookingConfirmed, domain.BookingCheckedIn).
		Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingCheckedIn}, nil).Once()
	mockNotifs.On("NotifyStatusChanged", mock.Anything, mock.Anything, domain.BookingConfirmed).Return(nil)

	service := newTestService(mockBookings, new(MockRoomRepository), mockNotifs)

	b, err := service.Transition(context.Background(), id, domain.BookingCheckedIn)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, b.Status)
	mockBookings.AssertExpectations(t)
	mockNotifs.AssertExpectations(t)
}

func TestService_Transition_NotInTable(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingPending}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Transition(context.Background(), id, domain.BookingCheckedIn)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockBookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_TerminalStateRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingCheckedOut}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Transition(context.Background(), id, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_CancelledTargetRejected(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), nil)

	// Cancellation carries refund context and has its own entry point.
	_, err := service.Transition(context.Background(), "bk-1", domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Transition(context.Background(), "missing", domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Transition_NoShow(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingConfirmed}, nil).Once()
	mockBookings.On("MarkNoShow", mock.Anything, id).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{
			ID:            id,
			Status:        domain.BookingNoShow,
			PaymentStatus: domain.PaymentNoRefund,
		}, nil).Once()

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	b, err := service.Transition(context.Background(), id, domain.BookingNoShow)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingNoShow, b.Status)
	assert.Equal(t, domain.PaymentNoRefund, b.PaymentStatus)
	mockBookings.AssertExpectations(t)
}

func TestService_Transition_LostRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingPending}, nil)
	mockBookings.On("TransitionStatus", mock.Anything, id, domain.BookingPending, domain.BookingConfirmed).
		Return(false, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Transition(context.Background(), id, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Cancel_RefundTiers(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    time.Time
		wantRefund string
		wantPay    domain.PaymentStatus
	}{
		{"10 days out", testNow.AddDate(0, 0, 10), "1000", domain.PaymentRefunded},
		{"5 days out", testNow.AddDate(0, 0, 5), "500", domain.PaymentRefunded},
		{"2 days out", testNow.AddDate(0, 0, 2), "250", domain.PaymentRefunded},
		{"check-in today", testNow, "0", domain.PaymentNoRefund},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			id := "bk-1"
			stored := &domain.Booking{
				ID:            id,
				Status:        domain.BookingConfirmed,
				PaymentStatus: domain.PaymentPaid,
				TotalAmount:   decimal.NewFromInt(1000),
				CheckIn:       tt.checkIn,
			}
			wantRefund := decimal.RequireFromString(tt.wantRefund)

			mockBookings.On("GetByID", mock.Anything, id).Return(stored, nil).Once()
			mockBookings.On("Cancel", mock.Anything, id,
				mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(wantRefund) }),
				tt.wantPay, "plans changed", domain.CancelledByCustomer, testNow.UTC()).
				Return(true, nil)
			mockBookings.On("GetByID", mock.Anything, id).Return(&domain.Booking{
				ID:           id,
				Status:       domain.BookingCancelled,
				RefundAmount: wantRefund,
			}, nil).Once()

			service := newTestService(mockBookings, new(MockRoomRepository), nil)

			res, err := service.Cancel(context.Background(), id, "plans changed", domain.CancelledByCustomer, time.Time{})

			assert.NoError(t, err)
			assert.True(t, res.RefundAmount.Equal(wantRefund), "want %s, got %s", wantRefund, res.RefundAmount)
			assert.Equal(t, domain.BookingCancelled, res.Booking.Status)
			mockBookings.AssertExpectations(t)
		})
	}
}

func TestService_Cancel_UnpaidNeverRefunds(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	id := "bk-1"
	mockBookings.On("GetByID", mock.Anything, id).Return(&domain.Booking{
		ID:            id,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		TotalAmount:   decimal.NewFromInt(1000),
		CheckIn:       testNow.AddDate(0, 0, 10),
	}, nil).Once()
	mockBookings.On("Cancel", mock.Anything, id, mock.Anything,
		domain.PaymentNoRefund, mock.Anything, domain.CancelledByHotel, mock.Anything).
		Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, id).Return(&domain.Booking{
		ID:     id,
		Status: domain.BookingCancelled,
	}, nil).Once()

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	res, err := service.Cancel(context.Background(), id, "overbooked", domain.CancelledByHotel, time.Time{})

	assert.NoError(t, err)
	// The table still computes a figure even when nothing was captured.
	assert.True(t, res.RefundAmount.Equal(decimal.NewFromInt(1000)))
	mockBookings.AssertExpectations(t)
}

func TestService_Cancel_CheckedInRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", Status: domain.BookingCheckedIn}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Cancel(context.Background(), "bk-1", "too late", domain.CancelledByCustomer, time.Time{})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockBookings.AssertNotCalled(t, "Cancel",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_AlreadyCancelledRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", Status: domain.BookingCancelled}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	_, err := service.Cancel(context.Background(), "bk-1", "again", domain.CancelledByCustomer, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Cancel_Validation(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), nil)

	_, err := service.Cancel(context.Background(), "bk-1", "   ", domain.CancelledByCustomer, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Cancel(context.Background(), "bk-1", "valid reason", domain.CancelActor("front-desk"), time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_GetRoomCalendar(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10),
		day(2026, 1, 1), day(2026, 2, 1)).
		Return([]domain.Booking{
			{ID: "b1", CheckIn: day(2026, 1, 10), CheckOut: day(2026, 1, 13), Status: domain.BookingConfirmed},
		}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), nil)

	cal, err := service.GetRoomCalendar(context.Background(), 10, 2026, time.January)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), cal.RoomID)
	assert.Len(t, cal.Days, 31)
	assert.True(t, cal.Days[9].Occupied)

	_, err = service.GetRoomCalendar(context.Background(), 10, 2026, time.Month(13))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_IsRoomAvailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(readyRoom(), nil)
	mockBookings.On("ListActiveForRoom", mock.Anything, int64(10), day(2026, 6, 10), day(2026, 6, 13)).
		Return([]domain.Booking{}, nil)

	service := newTestService(mockBookings, mockRooms, nil)

	ok, err := service.IsRoomAvailable(context.Background(), 10, day(2026, 6, 10), day(2026, 6, 13))
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestService_IsRoomAvailable_BlockedRoom(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	room := readyRoom()
	room.OperationalStatus = domain.RoomBlocked
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)

	service := newTestService(new(MockBookingRepository), mockRooms, nil)

	ok, err := service.IsRoomAvailable(context.Background(), 10, day(2026, 6, 10), day(2026, 6, 13))
	assert.NoError(t, err)
	assert.False(t, ok)
}
