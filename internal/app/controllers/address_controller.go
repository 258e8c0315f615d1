package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// AddressController handles address endpoints
type AddressController struct {
	addressService services.AddressService
}

// NewAddressController creates a new AddressController
func NewAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{
		addressService: addressService,
	}
}

// CreateAddress attaches an address to a student's identity card
// @Summary Create address
// @Description Resolves the student's college ID and stores the address against it
// @Tags addresses
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Address information"
// @Success 201 {object} models.Address "Address created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Address already exists for this college ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses [post]
func (c *AddressController) CreateAddress(ctx *gin.Context) {
	var req dto.CreateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid address data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	address, err := c.addressService.CreateAddress(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, address)
}

// GetAddressByCollegeID retrieves the address attached to an identity card
// @Summary Get address by college ID
// @Tags addresses
// @Produce json
// @Param college_id_number path string true "College ID number"
// @Success 200 {object} models.Address "Address retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses/{college_id_number} [get]
func (c *AddressController) GetAddressByCollegeID(ctx *gin.Context) {
	address, err := c.addressService.GetAddressByCollegeID(ctx.Request.Context(), ctx.Param("college_id_number"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, address)
}

// DeleteAddress removes the address attached to an identity card
// @Summary Delete address
// @Description Deleting a missing address succeeds
// @Tags addresses
// @Produce json
// @Param college_id_number path string true "College ID number"
// @Success 200 {object} dto.MessageResponse "Address deleted successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /addresses/{college_id_number} [delete]
func (c *AddressController) DeleteAddress(ctx *gin.Context) {
	if err := c.addressService.DeleteAddress(ctx.Request.Context(), ctx.Param("college_id_number")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Address deleted successfully"))
}
