package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(roomTypes *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: roomTypes}
}

type roomTypePayload struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  string   `json:"description"`
	BasePrice    float64  `json:"base_price" binding:"required,gt=0"`
	MaxOccupancy int      `json:"max_occupancy" binding:"required,min=1"`
	Amenities    []string `json:"amenities"`
	ImageURLs    []string `json:"image_urls"`
}

type seasonalRulePayload struct {
	Season     string  `json:"season" binding:"required"`
	Multiplier float64 `json:"multiplier" binding:"required,gt=0"`
	StartDate  string  `json:"start_date" binding:"required,bookdate"`
	EndDate    string  `json:"end_date" binding:"required,bookdate"`
}

func (ctrl *RoomTypeController) Create(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	amenities, _ := json.Marshal(payload.Amenities)
	images, _ := json.Marshal(payload.ImageURLs)

	rt := &models.RoomType{
		Name:         payload.Name,
		Category:     payload.Category,
		Description:  payload.Description,
		BasePrice:    payload.BasePrice,
		MaxOccupancy: payload.MaxOccupancy,
		Amenities:    datatypes.JSON(amenities),
		ImageURLs:    datatypes.JSON(images),
		Active:       true,
	}
	if err := ctrl.RoomTypes.Create(rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rt, err := ctrl.RoomTypes.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) List(c *gin.Context) {
	activeOnly := c.Query("all") == ""
	list, err := ctrl.RoomTypes.List(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *RoomTypeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "created_at")

	rt, err := ctrl.RoomTypes.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomTypes.Deactivate(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "active": false})
}

// Search answers GET /search?check_in=&check_out=&guests=&category=
func (ctrl *RoomTypeController) Search(c *gin.Context) {
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guests := 1
	if g := c.Query("guests"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid guests")
			return
		}
		guests = n
	}

	results, err := ctrl.RoomTypes.SearchAvailableRooms(services.SearchInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
		Category: c.Query("category"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, results)
}

func (ctrl *RoomTypeController) AddSeasonalRule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload seasonalRulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	start, _ := utils.ParseDate(payload.StartDate)
	end, _ := utils.ParseDate(payload.EndDate)

	rule := &models.SeasonalPricing{
		RoomTypeID: id,
		Season:     payload.Season,
		Multiplier: payload.Multiplier,
		StartDate:  start,
		EndDate:    end,
		Active:     true,
	}
	if err := ctrl.RoomTypes.AddSeasonalRule(rule); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rule)
}

func (ctrl *RoomTypeController) ListSeasonalRules(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rules, err := ctrl.RoomTypes.ListSeasonalRules(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rules)
}

func (ctrl *RoomTypeController) DeactivateSeasonalRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("ruleID"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rule id")
		return
	}
	if err := ctrl.RoomTypes.DeactivateSeasonalRule(uint(ruleID)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": ruleID, "active": false})
}
