package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// Seeds a small dev dataset: two hotels, a handful of rooms, and a booking
// history covering every lifecycle state.
func main() {
	log := logrus.New()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connection failed: ", err)
	}

	log.Info("running AutoMigrate")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Info("cleaning old data")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")

	ctx := context.Background()
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	grand := &domain.Hotel{Name: "Grand Meridian", City: "Lisbon", Address: "Av. da Liberdade 120", Stars: 5}
	harbor := &domain.Hotel{Name: "Harbor View Inn", City: "Porto", Address: "Rua das Flores 45", Stars: 3}
	for _, h := range []*domain.Hotel{grand, harbor} {
		if err := hotels.Create(ctx, h); err != nil {
			log.Fatal(err)
		}
	}

	roomSpecs := []struct {
		hotel   *domain.Hotel
		number  string
		rtype   domain.RoomType
		adults  int
		kids    int
		price   string
		opState domain.OperationalStatus
	}{
		{grand, "101", domain.RoomDouble, 2, 1, "180.00", domain.RoomReady},
		{grand, "102", domain.RoomTwin, 2, 0, "150.00", domain.RoomCleaning},
		{grand, "201", domain.RoomSuite, 3, 2, "420.00", domain.RoomReady},
		{grand, "202", domain.RoomDeluxe, 2, 2, "310.00", domain.RoomMaintenance},
		{harbor, "1", domain.RoomSingle, 1, 0, "75.00", domain.RoomReady},
		{harbor, "2", domain.RoomFamily, 2, 3, "140.00", domain.RoomReady},
	}

	seededRooms := make([]*domain.Room, 0, len(roomSpecs))
	for _, spec := range roomSpecs {
		price, _ := decimal.NewFromString(spec.price)
		room := &domain.Room{
			HotelID:           spec.hotel.ID,
			RoomNumber:        spec.number,
			RoomType:          spec.rtype,
			Capacity:          domain.RoomCapacity{Adults: spec.adults, Children: spec.kids},
			PricePerNight:     price,
			IsAvailable:       true,
			OperationalStatus: spec.opState,
		}
		if err := rooms.Create(ctx, room); err != nil {
			log.Fatal(err)
		}
		seededRooms = append(seededRooms, room)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cancelledAt := today.AddDate(0, 0, -10)
	reason := "change of plans"

	bookingSpecs := []struct {
		room    *domain.Room
		inDays  int
		nights  int
		status  domain.BookingStatus
		pay     domain.PaymentStatus
		refund  string
		review  *domain.Review
	}{
		{seededRooms[0], 14, 3, domain.BookingPending, domain.PaymentPending, "0", nil},
		{seededRooms[0], 3, 2, domain.BookingConfirmed, domain.PaymentPaid, "0", nil},
		{seededRooms[2], -1, 4, domain.BookingCheckedIn, domain.PaymentPaid, "0", nil},
		{seededRooms[4], -20, 2, domain.BookingCheckedOut, domain.PaymentPaid, "0",
			&domain.Review{Rating: 5, Comment: "Quiet room, great view of the harbor."}},
		{seededRooms[5], -5, 3, domain.BookingNoShow, domain.PaymentNoRefund, "0", nil},
	}

	customerID := int64(1000)
	for i, spec := range bookingSpecs {
		checkIn := today.AddDate(0, 0, spec.inDays)
		nights := decimal.NewFromInt(int64(spec.nights))
		refund, _ := decimal.NewFromString(spec.refund)
		b := &domain.Booking{
			ID:            uuid.NewString(),
			HotelID:       spec.room.HotelID,
			RoomID:        spec.room.ID,
			CustomerID:    customerID + int64(i),
			CheckIn:       checkIn,
			CheckOut:      checkIn.AddDate(0, 0, spec.nights),
			Guests:        domain.Guests{Adults: 1},
			Status:        spec.status,
			PaymentStatus: spec.pay,
			TotalAmount:   spec.room.PricePerNight.Mul(nights),
			RefundAmount:  refund,
			CreatedAt:     now,
		}
		if spec.review != nil {
			b.HasReview = true
			b.Review = spec.review
		}
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal(err)
		}
	}

	// One cancelled stay with its refund bookkeeping filled in.
	cancelled := &domain.Booking{
		ID:                 uuid.NewString(),
		HotelID:            grand.ID,
		RoomID:             seededRooms[1].ID,
		CustomerID:         customerID + 10,
		CheckIn:            today.AddDate(0, 0, -3),
		CheckOut:           today.AddDate(0, 0, -1),
		Guests:             domain.Guests{Adults: 2},
		Status:             domain.BookingCancelled,
		PaymentStatus:      domain.PaymentRefunded,
		TotalAmount:        decimal.RequireFromString("300.00"),
		RefundAmount:       decimal.RequireFromString("300.00"),
		CancellationReason: reason,
		CancelledBy:        domain.CancelledByCustomer,
		CancelledAt:        &cancelledAt,
		CreatedAt:          now,
	}
	if err := bookings.Create(ctx, cancelled); err != nil {
		log.Fatal(err)
	}

	fmt.Println("seed complete:", len(roomSpecs), "rooms,", len(bookingSpecs)+1, "bookings")
}
