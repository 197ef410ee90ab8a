package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEuros(t *testing.T) {
	assert.Equal(t, "0.00€", FormatEuros(0))
	assert.Equal(t, "0.05€", FormatEuros(5))
	assert.Equal(t, "0.99€", FormatEuros(99))
	assert.Equal(t, "1.00€", FormatEuros(100))
	assert.Equal(t, "1234.50€", FormatEuros(123450))
}
