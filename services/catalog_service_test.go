package services

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/pagination"
	"hotel-booking/repositories"
	"hotel-booking/testutil"
)

func TestHotelServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewHotelService(repositories.NewStore(testutil.NewDB(t)))

	h, err := svc.Create(ctx, HotelInput{Title: " Sea View ", Location: "Sochi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.Title != "Sea View" {
		t.Errorf("title should be trimmed, got %q", h.Title)
	}

	loc := "Adler"
	patched, err := svc.Patch(ctx, h.ID, HotelPatch{Location: &loc})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Title != "Sea View" || patched.Location != "Adler" {
		t.Fatalf("unexpected patch result %+v", patched)
	}

	replaced, err := svc.Replace(ctx, h.ID, HotelInput{Title: "Mountain", Location: "Krasnaya Polyana"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.Title != "Mountain" || replaced.Location != "Krasnaya Polyana" {
		t.Fatalf("unexpected replace result %+v", replaced)
	}

	if _, err := svc.Replace(ctx, h.ID+50, HotelInput{Title: "x", Location: "y"}); !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, h.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, h.ID); !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound after delete, got %v", err)
	}
}

func TestHotelServiceListRejectsInvalidRange(t *testing.T) {
	ctx := context.Background()
	svc := NewHotelService(repositories.NewStore(testutil.NewDB(t)))
	from, to := testutil.Date(t, "2024-08-10"), testutil.Date(t, "2024-08-10")

	_, err := svc.List(ctx, HotelSearch{DateFrom: &from, DateTo: &to}, pagination.Params{Page: 1, PerPage: 5})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRoomServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewRoomService(repositories.NewStore(db))
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	wifi := testutil.CreateFacility(t, db, "Wi-Fi")
	bar := testutil.CreateFacility(t, db, "Minibar")

	room, err := svc.Create(ctx, hotel.ID, RoomInput{Title: "Deluxe", Price: 300, Quantity: 2, FacilityIDs: []uint{wifi.ID}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(room.Facilities) != 1 || room.Facilities[0].ID != wifi.ID {
		t.Fatalf("unexpected facilities %+v", room.Facilities)
	}

	price := 350
	ids := []uint{bar.ID}
	room, err = svc.Patch(ctx, hotel.ID, room.ID, RoomPatch{Price: &price, FacilityIDs: &ids})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if room.Price != 350 || room.Quantity != 2 || room.Title != "Deluxe" {
		t.Fatalf("unexpected room after patch %+v", room)
	}
	if len(room.Facilities) != 1 || room.Facilities[0].ID != bar.ID {
		t.Fatalf("facilities were not replaced: %+v", room.Facilities)
	}

	desc := "Top floor"
	room, err = svc.Replace(ctx, hotel.ID, room.ID, RoomInput{Title: "Suite", Description: &desc, Price: 500, Quantity: 1})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if room.Title != "Suite" || room.Price != 500 || room.Quantity != 1 || room.Description == nil || *room.Description != desc {
		t.Fatalf("unexpected room after replace %+v", room)
	}
	if len(room.Facilities) != 0 {
		t.Fatalf("replace without facility ids must clear them, got %+v", room.Facilities)
	}

	other := testutil.CreateHotel(t, db, "Other", "Kazan")
	if _, err := svc.Get(ctx, other.ID, room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("room must not be reachable through another hotel, got %v", err)
	}

	if err := svc.Delete(ctx, hotel.ID, room.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, hotel.ID, room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound after delete, got %v", err)
	}
}

func TestRoomServiceCreateErrors(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repositories.NewStore(db)
	svc := NewRoomService(store)
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")

	tests := []struct {
		name    string
		hotelID uint
		in      RoomInput
		wantErr error
	}{
		{name: "unknown hotel", hotelID: hotel.ID + 10, in: RoomInput{Title: "A", Price: 10, Quantity: 1}, wantErr: ErrHotelNotFound},
		{name: "zero price", hotelID: hotel.ID, in: RoomInput{Title: "A", Price: 0, Quantity: 1}, wantErr: ErrInvalidRoom},
		{name: "zero quantity", hotelID: hotel.ID, in: RoomInput{Title: "A", Price: 10, Quantity: 0}, wantErr: ErrInvalidRoom},
		{name: "unknown facility", hotelID: hotel.ID, in: RoomInput{Title: "A", Price: 10, Quantity: 1, FacilityIDs: []uint{999}}, wantErr: ErrFacilityNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.hotelID, tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	n, _ := store.Rooms.Count(ctx, nil)
	if n != 0 {
		t.Fatalf("failed creates must not leave rooms behind, found %d", n)
	}
}

func TestRoomServiceListAvailability(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewRoomService(repositories.NewStore(db))
	user := testutil.CreateUser(t, db, "guest@example.com")
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	booked := testutil.CreateRoom(t, db, hotel.ID, 100, 1)
	testutil.CreateRoom(t, db, hotel.ID, 120, 1)
	testutil.CreateBooking(t, db, user.ID, booked.ID, "2024-08-10", "2024-08-20", 100)

	all, err := svc.List(ctx, hotel.ID, nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(all))
	}

	from, to := testutil.Date(t, "2024-08-11"), testutil.Date(t, "2024-08-13")
	free, err := svc.List(ctx, hotel.ID, &from, &to)
	if err != nil {
		t.Fatalf("list free: %v", err)
	}
	if len(free) != 1 || free[0].ID == booked.ID {
		t.Fatalf("expected only the unbooked room, got %+v", free)
	}

	if _, err := svc.List(ctx, hotel.ID+10, nil, nil); !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestFacilityService(t *testing.T) {
	ctx := context.Background()
	svc := NewFacilityService(repositories.NewStore(testutil.NewDB(t)))
	if _, err := svc.Create(ctx, "Sauna"); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Sauna" {
		t.Fatalf("unexpected facilities %+v", list)
	}
}
