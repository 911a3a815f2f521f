package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/pagination"
	"hotel-booking/repositories"
)

type HotelInput struct {
	Title    string
	Location string
}

type HotelPatch struct {
	Title    *string
	Location *string
}

// HotelSearch filters the hotel list. DateFrom and DateTo must be given
// together; then only hotels with a free room in that range are listed.
type HotelSearch struct {
	Title    string
	Location string
	DateFrom *time.Time
	DateTo   *time.Time
}

type HotelService struct {
	store *repositories.Store
}

func NewHotelService(store *repositories.Store) *HotelService {
	return &HotelService{store: store}
}

func (s *HotelService) List(ctx context.Context, search HotelSearch, page pagination.Params) ([]models.Hotel, error) {
	q := repositories.HotelQuery{Title: search.Title, Location: search.Location}
	if search.DateFrom != nil && search.DateTo != nil {
		from, to, err := validRange(*search.DateFrom, *search.DateTo)
		if err != nil {
			return nil, err
		}
		q.DateFrom, q.DateTo = &from, &to
	}
	return s.store.Hotels.Search(ctx, q, page.Offset(), page.Limit())
}

func (s *HotelService) Get(ctx context.Context, id uint) (*models.Hotel, error) {
	h, err := s.store.Hotels.GetOne(ctx, repositories.Filter{"id": id})
	return h, hotelErr(err)
}

func (s *HotelService) Create(ctx context.Context, in HotelInput) (*models.Hotel, error) {
	h := models.Hotel{Title: strings.TrimSpace(in.Title), Location: strings.TrimSpace(in.Location)}
	if err := s.store.Hotels.Add(ctx, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Replace overwrites every field of the hotel.
func (s *HotelService) Replace(ctx context.Context, id uint, in HotelInput) (*models.Hotel, error) {
	data := &models.Hotel{Title: strings.TrimSpace(in.Title), Location: strings.TrimSpace(in.Location)}
	if err := s.store.Hotels.Edit(ctx, data, repositories.Filter{"id": id}, false); err != nil {
		return nil, hotelErr(err)
	}
	return s.Get(ctx, id)
}

// Patch changes only the fields present in p.
func (s *HotelService) Patch(ctx context.Context, id uint, p HotelPatch) (*models.Hotel, error) {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Location != nil {
		changes["location"] = strings.TrimSpace(*p.Location)
	}
	if len(changes) == 0 {
		return s.Get(ctx, id)
	}
	if err := s.store.Hotels.Edit(ctx, changes, repositories.Filter{"id": id}, true); err != nil {
		return nil, hotelErr(err)
	}
	return s.Get(ctx, id)
}

func (s *HotelService) Delete(ctx context.Context, id uint) error {
	return hotelErr(s.store.Hotels.Delete(ctx, repositories.Filter{"id": id}))
}

func hotelErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrHotelNotFound
	}
	return err
}
