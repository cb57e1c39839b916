package controller

import (
	"slotswap/core/controller"
	"slotswap/core/errors"
	authController "slotswap/modules/auth/controller"
	"slotswap/modules/swap/dto"
	"slotswap/modules/swap/service"
	"slotswap/modules/swap/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SwapController struct {
	controller.BaseController
	service service.SwapServiceInterface
}

func NewSwapController(service service.SwapServiceInterface) *SwapController {
	return &SwapController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// CreateSwapRequest opens a negotiation between two slots
// @Summary Create a swap request
// @Description Proposes swapping one of my SWAPPABLE slots for another user's SWAPPABLE slot; locks both slots as SWAP_PENDING
// @Tags Swap
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSwapRequestBody true "Slot pair"
// @Success 201 {object} controller.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /swap-request [post]
func (c *SwapController) CreateSwapRequest(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	req := new(dto.CreateSwapRequestBody)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	validationResult := validator.ValidateCreateSwapRequest(req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	mySlotID, _ := uuid.Parse(req.MySlotID)
	theirSlotID, _ := uuid.Parse(req.TheirSlotID)

	resp, appErr := c.service.CreateSwapRequest(ctx.Request().Context(), userID, mySlotID, theirSlotID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, resp, "Swap request created successfully")
}

// RespondToSwapRequest resolves a pending negotiation
// @Summary Respond to a swap request
// @Description Owner of the desired slot accepts (slots exchange owners, both BUSY) or rejects (both slots return to SWAPPABLE)
// @Tags Swap
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param requestId path string true "Swap request ID"
// @Param request body dto.SwapResponseBody true "Decision"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /swap-request/response/{requestId} [post]
func (c *SwapController) RespondToSwapRequest(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid swap request ID", nil)
	}

	req := new(dto.SwapResponseBody)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	validationResult := validator.ValidateSwapResponse(req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	resp, appErr := c.service.RespondToSwapRequest(ctx.Request().Context(), userID, requestID, *req.Accept)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	message := "Swap request rejected"
	if *req.Accept {
		message = "Swap completed successfully"
	}
	return c.SuccessResponse(ctx, resp, message)
}

// GetSwapRequests lists my negotiations
// @Summary List my swap requests
// @Description All swap requests involving the current user, split into incoming and outgoing, newest first
// @Tags Swap
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /swap-request/requests [get]
func (c *SwapController) GetSwapRequests(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetSwapRequests(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Swap requests retrieved successfully")
}
