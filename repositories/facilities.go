package repositories

import (
	"context"

	"hotel-booking/models"
)

type FacilityRepository struct {
	Repository[models.Facility]
}

// ForRooms loads the facilities of every room in roomIDs, keyed by room id.
func (r FacilityRepository) ForRooms(ctx context.Context, roomIDs []uint) (map[uint][]models.Facility, error) {
	out := make(map[uint][]models.Facility, len(roomIDs))
	if len(roomIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		RoomID     uint
		FacilityID uint
		Title      string
	}
	err := r.db.WithContext(ctx).
		Table("rooms_facilities").
		Select("rooms_facilities.room_id, facilities.id AS facility_id, facilities.title").
		Joins("JOIN facilities ON facilities.id = rooms_facilities.facility_id").
		Where("rooms_facilities.room_id IN ?", roomIDs).
		Order("rooms_facilities.room_id, facilities.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RoomID] = append(out[row.RoomID], models.Facility{ID: row.FacilityID, Title: row.Title})
	}
	return out, nil
}

type RoomFacilityRepository struct {
	Repository[models.RoomFacility]
}

// SetForRoom makes facilityIDs the exact facility set of roomID, adding the
// missing links and removing the rest.
func (r RoomFacilityRepository) SetForRoom(ctx context.Context, roomID uint, facilityIDs []uint) error {
	var current []uint
	err := r.db.WithContext(ctx).
		Model(&models.RoomFacility{}).
		Where("room_id = ?", roomID).
		Pluck("facility_id", &current).Error
	if err != nil {
		return err
	}

	wanted := make(map[uint]struct{}, len(facilityIDs))
	for _, id := range facilityIDs {
		wanted[id] = struct{}{}
	}
	have := make(map[uint]struct{}, len(current))
	var stale []uint
	for _, id := range current {
		have[id] = struct{}{}
		if _, ok := wanted[id]; !ok {
			stale = append(stale, id)
		}
	}

	if len(stale) > 0 {
		err := r.db.WithContext(ctx).
			Where("room_id = ? AND facility_id IN ?", roomID, stale).
			Delete(&models.RoomFacility{}).Error
		if err != nil {
			return err
		}
	}

	var missing []models.RoomFacility
	for _, id := range facilityIDs {
		if _, ok := have[id]; ok {
			continue
		}
		have[id] = struct{}{}
		missing = append(missing, models.RoomFacility{RoomID: roomID, FacilityID: id})
	}
	return r.AddBulk(ctx, missing)
}
