package validator

import (
	"slotswap/core/validation"
	"slotswap/modules/swap/dto"

	"github.com/google/uuid"
)

func ValidateCreateSwapRequest(req *dto.CreateSwapRequestBody) *validation.Result {
	result := &validation.Result{}

	if req.MySlotID == "" {
		result.Add("my_slot_id", "My slot ID is required")
	} else if _, err := uuid.Parse(req.MySlotID); err != nil {
		result.Add("my_slot_id", "My slot ID must be a valid UUID")
	}

	if req.TheirSlotID == "" {
		result.Add("their_slot_id", "Their slot ID is required")
	} else if _, err := uuid.Parse(req.TheirSlotID); err != nil {
		result.Add("their_slot_id", "Their slot ID must be a valid UUID")
	}

	return result
}

func ValidateSwapResponse(req *dto.SwapResponseBody) *validation.Result {
	result := &validation.Result{}

	if req.Accept == nil {
		result.Add("accept", "Accept is required and must be true or false")
	}

	return result
}
