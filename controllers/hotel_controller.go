package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type HotelRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Location string `json:"location" binding:"required"`
}

type HotelPatchRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=100"`
	Location *string `json:"location" binding:"omitempty,min=1"`
}

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// GetHotels handles GET /api/hotels?title=&location=&date_from=&date_to=&page=&per_page=.
func (hc *HotelController) GetHotels(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	hotels, err := hc.HotelSvc.List(c.Request.Context(), services.HotelSearch{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		DateFrom: from,
		DateTo:   to,
	}, page)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	hotel, err := hc.HotelSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req HotelRequest
	if !bindJSON(c, &req) {
		return
	}
	hotel, err := hc.HotelSvc.Create(c.Request.Context(), services.HotelInput{Title: req.Title, Location: req.Location})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// ReplaceHotel handles PUT: every field is required.
func (hc *HotelController) ReplaceHotel(c *gin.Context) {
	id, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	var req HotelRequest
	if !bindJSON(c, &req) {
		return
	}
	hotel, err := hc.HotelSvc.Replace(c.Request.Context(), id, services.HotelInput{Title: req.Title, Location: req.Location})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// PatchHotel handles PATCH: absent fields are left alone.
func (hc *HotelController) PatchHotel(c *gin.Context) {
	id, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	var req HotelPatchRequest
	if !bindJSON(c, &req) {
		return
	}
	hotel, err := hc.HotelSvc.Patch(c.Request.Context(), id, services.HotelPatch{Title: req.Title, Location: req.Location})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c, "hotel_id")
	if !ok {
		return
	}
	if err := hc.HotelSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
