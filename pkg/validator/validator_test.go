package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	EmpID    string `json:"emp_id" validate:"trimmed_required,max=20"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(sample{EmpID: "E1", Quantity: 3}))

	errs := ValidateStruct(sample{EmpID: "   ", Quantity: -1})
	if assert.Len(t, errs, 2) {
		assert.Equal(t, "emp_id", errs[0].Field)
		assert.Equal(t, "trimmed_required", errs[0].Tag)
		assert.Equal(t, "quantity", errs[1].Field)
		assert.Equal(t, "min", errs[1].Tag)
	}
	assert.Contains(t, Message(errs), "quantity (min=0)")
}
