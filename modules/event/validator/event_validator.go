package validator

import (
	"strings"
	"time"

	"slotswap/core/constants"
	"slotswap/core/validation"
	"slotswap/modules/event/dto"
	"slotswap/modules/event/entity"
)

func ValidateCreateEventRequest(req *dto.CreateEventRequest) *validation.Result {
	result := &validation.Result{}

	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < constants.EventTitleMinLength {
		result.Add("title", "Title must be at least 3 characters long")
	} else if len(req.Title) > constants.EventTitleMaxLength {
		result.Add("title", "Title cannot exceed 100 characters")
	}

	if req.StartTime.IsZero() {
		result.Add("start_time", "Start time is required")
	} else if req.StartTime.Before(time.Now()) {
		result.Add("start_time", "Start time cannot be in the past")
	}

	if req.EndTime.IsZero() {
		result.Add("end_time", "End time is required")
	} else if !req.StartTime.IsZero() && !req.EndTime.After(req.StartTime) {
		result.Add("end_time", "End time must be after start time")
	}

	if req.Status != "" {
		status := entity.SlotStatus(req.Status)
		if status != entity.SlotStatusBusy && status != entity.SlotStatusSwappable {
			result.Add("status", "Status must be BUSY or SWAPPABLE")
		}
	}

	return result
}

func ValidateUpdateEventRequest(req *dto.UpdateEventRequest) *validation.Result {
	result := &validation.Result{}

	if req.Title != nil {
		*req.Title = strings.TrimSpace(*req.Title)
		if len(*req.Title) < constants.EventTitleMinLength {
			result.Add("title", "Title must be at least 3 characters long")
		} else if len(*req.Title) > constants.EventTitleMaxLength {
			result.Add("title", "Title cannot exceed 100 characters")
		}
	}

	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		result.Add("end_time", "End time must be after start time")
	}

	if req.Status != nil {
		status := entity.SlotStatus(*req.Status)
		if status != entity.SlotStatusBusy && status != entity.SlotStatusSwappable {
			result.Add("status", "Status must be BUSY or SWAPPABLE")
		}
	}

	return result
}
