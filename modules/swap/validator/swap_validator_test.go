package validator

import (
	"testing"

	"slotswap/modules/swap/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateSwapRequest_Valid(t *testing.T) {
	result := ValidateCreateSwapRequest(&dto.CreateSwapRequestBody{
		MySlotID:    uuid.NewString(),
		TheirSlotID: uuid.NewString(),
	})
	assert.False(t, result.HasError())
}

func TestValidateCreateSwapRequest_Missing(t *testing.T) {
	result := ValidateCreateSwapRequest(&dto.CreateSwapRequestBody{})

	assert.True(t, result.HasError())
	assert.Len(t, result.Errors, 2)
}

func TestValidateCreateSwapRequest_BadUUID(t *testing.T) {
	result := ValidateCreateSwapRequest(&dto.CreateSwapRequestBody{
		MySlotID:    "not-a-uuid",
		TheirSlotID: uuid.NewString(),
	})

	assert.True(t, result.HasError())
	assert.Equal(t, "my_slot_id", result.Errors[0].Field)
}

func TestValidateSwapResponse_MissingAccept(t *testing.T) {
	result := ValidateSwapResponse(&dto.SwapResponseBody{})
	assert.True(t, result.HasError())
}

func TestValidateSwapResponse_ExplicitFalse(t *testing.T) {
	accept := false
	result := ValidateSwapResponse(&dto.SwapResponseBody{Accept: &accept})
	assert.False(t, result.HasError())
}
