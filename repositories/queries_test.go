package repositories

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/testutil"
)

func TestBookingsCountOverlapping(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)

	user := testutil.CreateUser(t, db, "guest@example.com")
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	room := testutil.CreateRoom(t, db, hotel.ID, 100, 3)
	other := testutil.CreateRoom(t, db, hotel.ID, 100, 3)
	testutil.CreateBooking(t, db, user.ID, room.ID, "2024-08-10", "2024-08-20", 100)
	testutil.CreateBooking(t, db, user.ID, other.ID, "2024-08-10", "2024-08-20", 100)

	tests := []struct {
		name     string
		from, to string
		want     int64
	}{
		{name: "inside", from: "2024-08-12", to: "2024-08-15", want: 1},
		{name: "covering", from: "2024-08-01", to: "2024-08-31", want: 1},
		{name: "tail overlap", from: "2024-08-19", to: "2024-08-25", want: 1},
		{name: "ends on check-in", from: "2024-08-05", to: "2024-08-10", want: 0},
		{name: "starts on check-out", from: "2024-08-20", to: "2024-08-25", want: 0},
		{name: "disjoint", from: "2024-09-01", to: "2024-09-05", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Bookings.CountOverlapping(ctx, room.ID, testutil.Date(t, tt.from), testutil.Date(t, tt.to))
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoomsLockByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	room := testutil.CreateRoom(t, db, hotel.ID, 150, 2)

	err := store.Transaction(ctx, func(tx *Store) error {
		got, err := tx.Rooms.LockByID(ctx, room.ID)
		if err != nil {
			return err
		}
		if got.Price != 150 || got.Quantity != 2 {
			t.Errorf("unexpected room %+v", got)
		}
		if _, err := tx.Rooms.LockByID(ctx, room.ID+100); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
}

func TestRoomsFreeForHotel(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)

	user := testutil.CreateUser(t, db, "guest@example.com")
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	single := testutil.CreateRoom(t, db, hotel.ID, 100, 1)
	double := testutil.CreateRoom(t, db, hotel.ID, 200, 2)
	testutil.CreateBooking(t, db, user.ID, single.ID, "2024-08-10", "2024-08-20", 100)
	testutil.CreateBooking(t, db, user.ID, double.ID, "2024-08-10", "2024-08-20", 200)

	free, err := store.Rooms.FreeForHotel(ctx, hotel.ID, testutil.Date(t, "2024-08-12"), testutil.Date(t, "2024-08-14"))
	if err != nil {
		t.Fatalf("free rooms: %v", err)
	}
	if len(free) != 1 || free[0].ID != double.ID {
		t.Fatalf("expected only the double room, got %+v", free)
	}

	free, err = store.Rooms.FreeForHotel(ctx, hotel.ID, testutil.Date(t, "2024-08-20"), testutil.Date(t, "2024-08-22"))
	if err != nil {
		t.Fatalf("free rooms: %v", err)
	}
	if len(free) != 2 {
		t.Fatalf("expected both rooms after check-out, got %d", len(free))
	}
}

func TestHotelsSearch(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)

	user := testutil.CreateUser(t, db, "guest@example.com")
	full := testutil.CreateHotel(t, db, "Grand Palace", "Sochi")
	open := testutil.CreateHotel(t, db, "Palace Lite", "Sochi Adler")
	testutil.CreateHotel(t, db, "River Inn", "Kazan")
	fullRoom := testutil.CreateRoom(t, db, full.ID, 100, 1)
	testutil.CreateRoom(t, db, open.ID, 80, 1)
	testutil.CreateBooking(t, db, user.ID, fullRoom.ID, "2024-08-10", "2024-08-20", 100)

	byTitle, err := store.Hotels.Search(ctx, HotelQuery{Title: "palace"}, 0, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byTitle) != 2 {
		t.Fatalf("expected 2 palaces, got %d", len(byTitle))
	}

	byLocation, err := store.Hotels.Search(ctx, HotelQuery{Location: "KAZAN"}, 0, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byLocation) != 1 || byLocation[0].Title != "River Inn" {
		t.Fatalf("unexpected location match %+v", byLocation)
	}

	from, to := testutil.Date(t, "2024-08-12"), testutil.Date(t, "2024-08-14")
	available, err := store.Hotels.Search(ctx, HotelQuery{Location: "sochi", DateFrom: &from, DateTo: &to}, 0, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(available) != 1 || available[0].ID != open.ID {
		t.Fatalf("expected only %q to have a free room, got %+v", open.Title, available)
	}

	paged, err := store.Hotels.Search(ctx, HotelQuery{}, 2, 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paged) != 1 {
		t.Fatalf("expected 1 hotel on the offset page, got %d", len(paged))
	}
}

func TestRoomFacilitiesSetForRoom(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := NewStore(db)
	hotel := testutil.CreateHotel(t, db, "Sea View", "Sochi")
	room := testutil.CreateRoom(t, db, hotel.ID, 100, 1)

	var ids []uint
	for _, title := range []string{"Wi-Fi", "Minibar", "Balcony"} {
		f := testutil.CreateFacility(t, db, title)
		ids = append(ids, f.ID)
	}

	if err := store.RoomFacilities.SetForRoom(ctx, room.ID, ids[:2]); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.RoomFacilities.SetForRoom(ctx, room.ID, ids[1:]); err != nil {
		t.Fatalf("replace: %v", err)
	}

	byRoom, err := store.Facilities.ForRooms(ctx, []uint{room.ID})
	if err != nil {
		t.Fatalf("for rooms: %v", err)
	}
	got := byRoom[room.ID]
	if len(got) != 2 || got[0].Title != "Minibar" || got[1].Title != "Balcony" {
		t.Fatalf("unexpected facilities %+v", got)
	}

	if err := store.RoomFacilities.SetForRoom(ctx, room.ID, []uint{9999}); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if err := store.RoomFacilities.SetForRoom(ctx, room.ID, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	n, _ := store.RoomFacilities.Count(ctx, Filter{"room_id": room.ID})
	if n != 0 {
		t.Fatalf("expected no links after clearing, got %d", n)
	}
}
