package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for all repository models. The postgres
// overlap exclusion constraint is added separately because GORM cannot
// express it; sqlite runs without it and relies on the transactional
// recheck in BookingRepository.Create. Postgres has no ADD CONSTRAINT IF
// NOT EXISTS, so the duplicate_object error on restart is swallowed in a
// DO block to keep the migration rerunnable.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&hotelModel{}, &roomModel{}, &bookingModel{}); err != nil {
		return err
	}
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`
CREATE EXTENSION IF NOT EXISTS btree_gist;
DO $$ BEGIN
  ALTER TABLE bookings ADD CONSTRAINT idx_no_room_overlap
    EXCLUDE USING gist (
      room_id WITH =,
      daterange(check_in::date, check_out::date, '[)') WITH &&
    ) WHERE (status NOT IN ('cancelled', 'no-show'));
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;
`).Error
	}
	return nil
}
