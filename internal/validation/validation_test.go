package validation

import (
	"testing"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedPayload struct {
	Name string `json:"name" validate:"required"`
}

type samplePayload struct {
	Distance int             `json:"distance" validate:"gt=0"`
	Source   nestedPayload   `json:"source"`
	Crew     []int64         `json:"crew" validate:"dive,gt=0"`
	Items    []nestedPayload `json:"items" validate:"min=1,dive"`
}

func TestStruct_Valid(t *testing.T) {
	p := samplePayload{
		Distance: 10,
		Source:   nestedPayload{Name: "JFK"},
		Crew:     []int64{1, 2},
		Items:    []nestedPayload{{Name: "x"}},
	}

	assert.NoError(t, Struct(p))
}

func TestStruct_FieldPaths(t *testing.T) {
	p := samplePayload{
		Crew:  []int64{0},
		Items: []nestedPayload{{}},
	}

	var appErr *errs.Error
	require.ErrorAs(t, Struct(p), &appErr)
	assert.Equal(t, errs.KindValidation, appErr.Kind)

	got := map[string]string{}
	for _, f := range appErr.Fields {
		got[f.Field] = f.Error
	}
	assert.Equal(t, "must be greater than 0", got["distance"])
	assert.Equal(t, "is required", got["source.name"])
	assert.Equal(t, "must be greater than 0", got["crew[0]"])
	assert.Equal(t, "is required", got["items[0].name"])
}
