package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// CollegeIDController handles identity card endpoints
type CollegeIDController struct {
	collegeIDService services.CollegeIDService
}

// NewCollegeIDController creates a new CollegeIDController
func NewCollegeIDController(collegeIDService services.CollegeIDService) *CollegeIDController {
	return &CollegeIDController{
		collegeIDService: collegeIDService,
	}
}

// GetAllCollegeIDs lists all identity cards
// @Summary List college IDs
// @Tags college-ids
// @Produce json
// @Success 200 {array} models.CollegeID "College IDs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college-ids [get]
func (c *CollegeIDController) GetAllCollegeIDs(ctx *gin.Context) {
	cards, err := c.collegeIDService.GetAllCollegeIDs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if cards == nil {
		cards = []*models.CollegeID{}
	}
	ctx.JSON(http.StatusOK, cards)
}

// GetCollegeIDByNumber retrieves an identity card by number
// @Summary Get college ID by number
// @Tags college-ids
// @Produce json
// @Param college_id_number path string true "College ID number"
// @Success 200 {object} models.CollegeID "College ID retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College ID not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college-ids/{college_id_number} [get]
func (c *CollegeIDController) GetCollegeIDByNumber(ctx *gin.Context) {
	card, err := c.collegeIDService.GetCollegeIDByNumber(ctx.Request.Context(), ctx.Param("college_id_number"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// CreateCollegeID creates an identity card record directly
// @Summary Create college ID
// @Tags college-ids
// @Accept json
// @Produce json
// @Param request body dto.CreateCollegeIDRequest true "College ID information"
// @Success 201 {object} dto.MessageResponse "College ID created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "College ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college-ids [post]
func (c *CollegeIDController) CreateCollegeID(ctx *gin.Context) {
	var req dto.CreateCollegeIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ID data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.collegeIDService.CreateCollegeID(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("College ID created successfully"))
}

// DeleteCollegeID deletes an identity card
// @Summary Delete college ID
// @Description Deleting a missing college ID succeeds
// @Tags college-ids
// @Produce json
// @Param college_id_number path string true "College ID number"
// @Success 200 {object} dto.MessageResponse "College ID deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "College ID is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college-ids/{college_id_number} [delete]
func (c *CollegeIDController) DeleteCollegeID(ctx *gin.Context) {
	if err := c.collegeIDService.DeleteCollegeID(ctx.Request.Context(), ctx.Param("college_id_number")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("College ID deleted successfully"))
}
