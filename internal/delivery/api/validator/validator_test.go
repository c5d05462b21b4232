package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentRequest struct {
	Rating float64 `json:"rating" validate:"gte=1,lte=5"`
	Text   string  `json:"text" validate:"required,max=10"`
	Email  string  `json:"email,omitempty" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&commentRequest{Rating: 4, Text: "good"}))

	err := v.Validate(&commentRequest{Rating: 6, Text: "", Email: "nope"})
	require.Error(t, err)

	var reqErr *RequestValidationError
	require.ErrorAs(t, err, &reqErr)
	require.Len(t, reqErr.Fields, 3)

	assert.Equal(t, FieldError{Field: "rating", Tag: "lte", Message: "rating must be less than or equal to 5"}, reqErr.Fields[0])
	assert.Equal(t, "text is required", reqErr.Fields[1].Message)
	assert.Equal(t, "email must be a valid email address", reqErr.Fields[2].Message)
	assert.Contains(t, err.Error(), "; ")
}

func TestValidate_StringLength(t *testing.T) {
	err := New().Validate(&commentRequest{Rating: 1, Text: "far too long text"})

	var reqErr *RequestValidationError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "text must be at most 10 characters", reqErr.Fields[0].Message)
}
