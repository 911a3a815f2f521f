package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type FacilityRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

type FacilityController struct {
	FacilitySvc *services.FacilityService
}

func NewFacilityController(svc *services.FacilityService) *FacilityController {
	return &FacilityController{FacilitySvc: svc}
}

func (fc *FacilityController) GetFacilities(c *gin.Context) {
	facilities, err := fc.FacilitySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, facilities)
}

func (fc *FacilityController) CreateFacility(c *gin.Context) {
	var req FacilityRequest
	if !bindJSON(c, &req) {
		return
	}
	facility, err := fc.FacilitySvc.Create(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, facility)
}
