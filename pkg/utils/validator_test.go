package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Link  string `json:"link" validate:"required,url"`
	Count int    `json:"count" validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "x", Link: "https://example.com", Count: 1}))

	errs := ValidateStruct(sample{Link: "nope"})
	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"link":  "Must be a valid URL",
		"count": "Minimum length is 1",
	}, errs)
}

func TestValidateStructWith_Overrides(t *testing.T) {
	messages := map[string]string{
		"name":          "Name please",
		"link.required": "Link please",
	}

	errs := ValidateStructWith(sample{Count: 1}, messages)
	assert.Equal(t, "Name please", errs["name"])
	assert.Equal(t, "Link please", errs["link"])

	// No tag-specific override, falls back to the default.
	errs = ValidateStructWith(sample{Name: "x", Link: "nope", Count: 1}, messages)
	assert.Equal(t, map[string]string{"link": "Must be a valid URL"}, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", got)
}
