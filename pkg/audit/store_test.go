package audit

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := CheckEvent{
		UserID:     "user-1",
		ClientIP:   "10.0.0.1",
		Permission: "roles:read",
		Allowed:    true,
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,  // facility
			int(SeverityInfo), // severity
			sqlmock.AnyArg(),  // timestamp
			sqlmock.AnyArg(),  // hostname
			"avalingo",        // appname
			sqlmock.AnyArg(),  // procid
			"check",           // msgid
			sqlmock.AnyArg(),  // sdata (JSON)
			sqlmock.AnyArg(),  // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveFailedGrant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := GrantEvent{
		GrantedBy:    "admin-1",
		UserID:       "user-1",
		RoleID:       "nonexistent",
		ClientIP:     "10.0.0.1",
		Success:      false,
		ErrorMessage: "role not found",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,
			int(SeverityWarning), // Failed events have warning severity
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"avalingo",
			sqlmock.AnyArg(),
			"grant",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveAttemptScored(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := AttemptScoredEvent{
		UserID:      "user-1",
		AttemptID:   "att-42",
		Level:       "B1",
		Score:       28,
		TotalPoints: 40,
		ClientIP:    "10.0.0.1",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuth,
			int(SeverityInfo),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"avalingo",
			sqlmock.AnyArg(),
			"placement",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{db: nil}

	event := CheckEvent{
		UserID:     "user-1",
		ClientIP:   "10.0.0.1",
		Permission: "roles:read",
		Allowed:    true,
	}

	// Should not error when db is nil
	err := store.Save(event)
	if err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	store := NewStoreWithDB(db)

	mock.ExpectClose()

	err = store.Close()
	if err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreCloseNilDB(t *testing.T) {
	store := &Store{db: nil}

	err := store.Close()
	if err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}

func TestMessage(t *testing.T) {
	msg := Message{
		Facility:  FacilityAuthPriv,
		Severity:  int(SeverityInfo),
		Timestamp: time.Now(),
		Hostname:  "localhost",
		Appname:   "avalingo",
		Procid:    "12345",
		Msgid:     "check",
		Sdata:     map[string]any{"auth@32473": map[string]any{"user": "user-1"}},
		Message:   "user-1 checked permission roles:read: allowed",
	}

	if msg.Facility != FacilityAuthPriv {
		t.Errorf("Message.Facility = %v, want %v", msg.Facility, FacilityAuthPriv)
	}
	if msg.Msgid != "check" {
		t.Errorf("Message.Msgid = %v, want 'check'", msg.Msgid)
	}
}
