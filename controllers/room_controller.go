package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type RoomRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Price       int     `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	FacilityIDs []uint  `json:"facility_ids" binding:"omitempty,dive,gt=0"`
}

func (r RoomRequest) input() services.RoomInput {
	return services.RoomInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		FacilityIDs: r.FacilityIDs,
	}
}

type RoomPatchRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *int    `json:"price" binding:"omitempty,gt=0"`
	Quantity    *int    `json:"quantity" binding:"omitempty,gte=1"`
	FacilityIDs *[]uint `json:"facility_ids" binding:"omitempty,dive,gt=0"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/hotels/:hotel_id/rooms?date_from=&date_to=.
func (rc *RoomController) GetRooms(c *gin.Context) {
	hotelID, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	rooms, err := rc.RoomSvc.List(c.Request.Context(), hotelID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	hotelID, roomID, ok := roomPath(c)
	if !ok {
		return
	}
	room, err := rc.RoomSvc.Get(c.Request.Context(), hotelID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelID, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	var req RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.RoomSvc.Create(c.Request.Context(), hotelID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) ReplaceRoom(c *gin.Context) {
	hotelID, roomID, ok := roomPath(c)
	if !ok {
		return
	}
	var req RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.RoomSvc.Replace(c.Request.Context(), hotelID, roomID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) PatchRoom(c *gin.Context) {
	hotelID, roomID, ok := roomPath(c)
	if !ok {
		return
	}
	var req RoomPatchRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.RoomSvc.Patch(c.Request.Context(), hotelID, roomID, services.RoomPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		FacilityIDs: req.FacilityIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	hotelID, roomID, ok := roomPath(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(c.Request.Context(), hotelID, roomID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": roomID})
}

func roomPath(c *gin.Context) (uint, uint, bool) {
	hotelID, ok := paramID(c, "hotel_id")
	if !ok {
		return 0, 0, false
	}
	roomID, ok := paramID(c, "room_id")
	if !ok {
		return 0, 0, false
	}
	return hotelID, roomID, true
}
