package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	notifs   NotificationSender
	clock    clock.Clock
}

func NewService(bookings BookingRepository, rooms RoomRepository, notifs NotificationSender, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		notifs:   notifs,
		clock:    clk,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	if req.Guests.Adults < 1 || req.Guests.Children < 0 {
		return nil, ErrValidation
	}
	if req.TotalAmount.Sign() < 0 {
		return nil, ErrValidation
	}

	now := s.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return nil, ErrValidation
	}

	pay := domain.PaymentPending
	if req.PaymentStatus != "" {
		pay = domain.PaymentStatus(req.PaymentStatus)
		if !pay.Valid() {
			return nil, ErrValidation
		}
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !room.Bookable() {
		return nil, ErrRoomUnavailable
	}
	if req.Guests.Adults > room.Capacity.Adults || req.Guests.Children > room.Capacity.Children {
		return nil, ErrValidation
	}

	existing, err := s.bookings.ListActiveForRoom(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if blocking := FindConflicts(checkIn, checkOut, existing); len(blocking) > 0 {
		return nil, &ConflictError{Blocking: blocking}
	}

	// Payment capture belongs to the payment collaborator; a booking that
	// arrives already paid starts out confirmed, everything else pending.
	status := domain.BookingPending
	if pay == domain.PaymentPaid {
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		ID:            uuid.NewString(),
		HotelID:       req.HotelID,
		RoomID:        req.RoomID,
		CustomerID:    req.CustomerID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		Status:        status,
		PaymentStatus: pay,
		TotalAmount:   req.TotalAmount,
		RefundAmount:  decimal.Zero,
		CreatedAt:     now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// The pre-check above cannot stop two concurrent creates; the
		// transactional recheck and the postgres exclusion constraint can.
		if errors.Is(err, repository.ErrOverlap) {
			return nil, &ConflictError{}
		}
		// An EXCLUDE constraint raises exclusion_violation, 23P01.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_room_overlap" {
			return nil, &ConflictError{}
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyStatusChanged(ctx, b, "")
	}
	return b, nil
}

// Transition applies one edge of the lifecycle table. Cancellation is not
// reachable from here: it needs a refund computed alongside, so it lives in
// Cancel.
func (s *Service) Transition(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error) {
	if !target.Valid() {
		return nil, ErrValidation
	}
	if target == domain.BookingCancelled {
		return nil, ErrInvalidTransition
	}

	b, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, target) {
		return nil, ErrInvalidTransition
	}

	var ok bool
	if target == domain.BookingNoShow {
		// A no-show never refunds: the check-in instant has passed, so the
		// tier table would yield 0% anyway. Written atomically with status.
		ok, err = s.bookings.MarkNoShow(ctx, id)
	} else {
		ok, err = s.bookings.TransitionStatus(ctx, id, b.Status, target)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a read-modify-write race; the stored status moved on.
		return nil, ErrInvalidTransition
	}

	prev := b.Status
	b, err = s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyStatusChanged(ctx, b, prev)
	}
	return b, nil
}

// Cancel transitions a pending or confirmed booking to cancelled, writing
// status, refund amount and payment status in one conditional update. The
// now instant is captured once so repeated calls with the same stored value
// are deterministic.
func (s *Service) Cancel(ctx context.Context, id, reason string, by domain.CancelActor, now time.Time) (*CancelResult, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}
	if by != domain.CancelledByCustomer && by != domain.CancelledByHotel {
		return nil, ErrValidation
	}
	if now.IsZero() {
		now = s.clock.Now().UTC()
	}

	b, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, domain.BookingCancelled) {
		return nil, ErrInvalidTransition
	}

	refund := ComputeRefund(b.TotalAmount, b.CheckIn, now)
	pay := domain.PaymentNoRefund
	if b.PaymentStatus == domain.PaymentPaid && refund.Sign() > 0 {
		pay = domain.PaymentRefunded
	}

	ok, err := s.bookings.Cancel(ctx, id, refund, pay, reason, by, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	prev := b.Status
	b, err = s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyStatusChanged(ctx, b, prev)
	}
	return &CancelResult{Booking: b, RefundAmount: refund}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getByID(ctx, id)
}

func (s *Service) GetRoomCalendar(ctx context.Context, roomID int64, year int, month time.Month) (*RoomCalendar, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, ErrValidation
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	bookings, err := s.bookings.ListActiveForRoom(ctx, roomID, first, next)
	if err != nil {
		return nil, err
	}

	return &RoomCalendar{
		RoomID: roomID,
		Year:   year,
		Month:  int(month),
		Days:   BuildCalendar(year, month, bookings),
	}, nil
}

func (s *Service) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if !room.Bookable() {
		return false, nil
	}

	existing, err := s.bookings.ListActiveForRoom(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !HasConflict(checkIn, checkOut, existing), nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID, clampLimit(limit), max(offset, 0))
}

func (s *Service) ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByHotel(ctx, hotelID, clampLimit(limit), max(offset, 0))
}

func (s *Service) getByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
