package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Status string `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Limit  int    `json:"limit" validate:"omitempty,min=1"`
}

func TestStructValid(t *testing.T) {
	err := Struct(&createPayload{Title: "t", Body: "b", Status: "DRAFT"})
	assert.NoError(t, err)
}

func TestStructCollectsAllViolations(t *testing.T) {
	err := Struct(&createPayload{Status: "LIVE", Limit: -1})
	require.Error(t, err)

	ve, ok := AsErrors(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 4)

	byField := map[string]FieldError{}
	for _, fe := range ve.Fields {
		byField[fe.Field] = fe
	}

	assert.Equal(t, "required", byField["title"].Rule)
	assert.Equal(t, "required", byField["body"].Rule)
	assert.Equal(t, "oneof", byField["status"].Rule)
	assert.Equal(t, "min", byField["limit"].Rule)
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	type payload struct {
		AuthorID string `json:"author_id" validate:"required"`
	}

	err := Struct(&payload{})
	ve, ok := AsErrors(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "author_id", ve.Fields[0].Field)
}

func TestErrorMessages(t *testing.T) {
	err := Struct(&createPayload{Title: "t", Body: "b", Status: "LIVE"})
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve.Error(), "status must be one of")
}

func TestAsErrorsRejectsOtherErrors(t *testing.T) {
	_, ok := AsErrors(errors.New("boom"))
	assert.False(t, ok)
}
