package validator

import (
	"strings"
	"testing"
	"time"

	"slotswap/modules/event/dto"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *dto.CreateEventRequest {
	start := time.Now().Add(24 * time.Hour)
	return &dto.CreateEventRequest{
		Title:     "Sprint planning",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestValidateCreateEventRequest_Valid(t *testing.T) {
	result := ValidateCreateEventRequest(validCreateRequest())
	assert.False(t, result.HasError())
}

func TestValidateCreateEventRequest_TitleTooShort(t *testing.T) {
	req := validCreateRequest()
	req.Title = "ab"

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "title", result.Errors[0].Field)
}

func TestValidateCreateEventRequest_TitleTooLong(t *testing.T) {
	req := validCreateRequest()
	req.Title = strings.Repeat("x", 101)

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
}

func TestValidateCreateEventRequest_TrimsTitle(t *testing.T) {
	req := validCreateRequest()
	req.Title = "  Sprint planning  "

	result := ValidateCreateEventRequest(req)

	assert.False(t, result.HasError())
	assert.Equal(t, "Sprint planning", req.Title)
}

func TestValidateCreateEventRequest_StartInPast(t *testing.T) {
	req := validCreateRequest()
	req.StartTime = time.Now().Add(-time.Hour)

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "start_time", result.Errors[0].Field)
}

func TestValidateCreateEventRequest_EndBeforeStart(t *testing.T) {
	req := validCreateRequest()
	req.EndTime = req.StartTime.Add(-time.Minute)

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "end_time", result.Errors[0].Field)
}

func TestValidateCreateEventRequest_BadStatus(t *testing.T) {
	req := validCreateRequest()
	req.Status = "SWAP_PENDING"

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "status", result.Errors[0].Field)
}

func TestValidateUpdateEventRequest_Empty(t *testing.T) {
	result := ValidateUpdateEventRequest(&dto.UpdateEventRequest{})
	assert.False(t, result.HasError())
}

func TestValidateUpdateEventRequest_BadStatus(t *testing.T) {
	status := "SWAP_PENDING"
	result := ValidateUpdateEventRequest(&dto.UpdateEventRequest{Status: &status})
	assert.True(t, result.HasError())
}

func TestValidateUpdateEventRequest_EndBeforeStart(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(-time.Minute)
	result := ValidateUpdateEventRequest(&dto.UpdateEventRequest{StartTime: &start, EndTime: &end})
	assert.True(t, result.HasError())
}
