package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/repositories"
)

var ErrInvalidRoom = errors.New("room price must be positive and quantity at least 1")

type RoomInput struct {
	Title       string
	Description *string
	Price       int
	Quantity    int
	FacilityIDs []uint
}

// RoomPatch holds optional changes. A non-nil FacilityIDs replaces the whole
// facility set, an empty slice clears it.
type RoomPatch struct {
	Title       *string
	Description *string
	Price       *int
	Quantity    *int
	FacilityIDs *[]uint
}

type RoomService struct {
	store *repositories.Store
}

func NewRoomService(store *repositories.Store) *RoomService {
	return &RoomService{store: store}
}

// List returns the rooms of a hotel with their facilities. With both dates
// set only rooms that still have a free unit across the range are listed.
func (s *RoomService) List(ctx context.Context, hotelID uint, dateFrom, dateTo *time.Time) ([]models.Room, error) {
	if err := s.ensureHotel(ctx, s.store, hotelID); err != nil {
		return nil, err
	}

	var (
		rooms []models.Room
		err   error
	)
	if dateFrom != nil && dateTo != nil {
		from, to, rerr := validRange(*dateFrom, *dateTo)
		if rerr != nil {
			return nil, rerr
		}
		rooms, err = s.store.Rooms.FreeForHotel(ctx, hotelID, from, to)
	} else {
		rooms, err = s.store.Rooms.GetFiltered(ctx, repositories.Filter{"hotel_id": hotelID})
	}
	if err != nil {
		return nil, err
	}
	return s.withFacilities(ctx, rooms)
}

func (s *RoomService) Get(ctx context.Context, hotelID, roomID uint) (*models.Room, error) {
	room, err := s.store.Rooms.GetOne(ctx, repositories.Filter{"id": roomID, "hotel_id": hotelID})
	if err != nil {
		return nil, roomErr(err)
	}
	rooms, err := s.withFacilities(ctx, []models.Room{*room})
	if err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

func (s *RoomService) Create(ctx context.Context, hotelID uint, in RoomInput) (*models.Room, error) {
	if in.Price <= 0 || in.Quantity < 1 {
		return nil, ErrInvalidRoom
	}
	room := models.Room{
		HotelID:     hotelID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := s.ensureHotel(ctx, tx, hotelID); err != nil {
			return err
		}
		if err := tx.Rooms.Add(ctx, &room); err != nil {
			return err
		}
		return setFacilities(ctx, tx, room.ID, in.FacilityIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, hotelID, room.ID)
}

func (s *RoomService) Replace(ctx context.Context, hotelID, roomID uint, in RoomInput) (*models.Room, error) {
	if in.Price <= 0 || in.Quantity < 1 {
		return nil, ErrInvalidRoom
	}
	data := &models.Room{
		HotelID:     hotelID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		filter := repositories.Filter{"id": roomID, "hotel_id": hotelID}
		if err := tx.Rooms.Edit(ctx, data, filter, false); err != nil {
			return roomErr(err)
		}
		return setFacilities(ctx, tx, roomID, in.FacilityIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, hotelID, roomID)
}

func (s *RoomService) Patch(ctx context.Context, hotelID, roomID uint, p RoomPatch) (*models.Room, error) {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Price != nil {
		if *p.Price <= 0 {
			return nil, ErrInvalidRoom
		}
		changes["price"] = *p.Price
	}
	if p.Quantity != nil {
		if *p.Quantity < 1 {
			return nil, ErrInvalidRoom
		}
		changes["quantity"] = *p.Quantity
	}

	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		filter := repositories.Filter{"id": roomID, "hotel_id": hotelID}
		if len(changes) > 0 {
			if err := tx.Rooms.Edit(ctx, changes, filter, true); err != nil {
				return roomErr(err)
			}
		} else if _, err := tx.Rooms.GetOne(ctx, filter); err != nil {
			return roomErr(err)
		}
		if p.FacilityIDs != nil {
			return setFacilities(ctx, tx, roomID, *p.FacilityIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, hotelID, roomID)
}

func (s *RoomService) Delete(ctx context.Context, hotelID, roomID uint) error {
	return roomErr(s.store.Rooms.Delete(ctx, repositories.Filter{"id": roomID, "hotel_id": hotelID}))
}

func (s *RoomService) ensureHotel(ctx context.Context, store *repositories.Store, hotelID uint) error {
	h, err := store.Hotels.GetOneOrNone(ctx, repositories.Filter{"id": hotelID})
	if err != nil {
		return err
	}
	if h == nil {
		return ErrHotelNotFound
	}
	return nil
}

func (s *RoomService) withFacilities(ctx context.Context, rooms []models.Room) ([]models.Room, error) {
	ids := make([]uint, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	byRoom, err := s.store.Facilities.ForRooms(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		rooms[i].Facilities = byRoom[rooms[i].ID]
	}
	return rooms, nil
}

func setFacilities(ctx context.Context, tx *repositories.Store, roomID uint, facilityIDs []uint) error {
	err := tx.RoomFacilities.SetForRoom(ctx, roomID, facilityIDs)
	if errors.Is(err, repositories.ErrInvalidReference) {
		return ErrFacilityNotFound
	}
	return err
}

func roomErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrRoomNotFound
	}
	return err
}
