package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeFactor(t *testing.T) {
	assert.Equal(t, 1.00, AgeFactor(0))
	assert.Equal(t, 0.85, AgeFactor(1))
	assert.Equal(t, 0.60, AgeFactor(5))
	assert.Equal(t, 0.38, AgeFactor(10))

	// Ages beyond the table cap at the 10-year factor.
	assert.Equal(t, 0.38, AgeFactor(20))

	// Future model years (negative age) fall to the default.
	assert.Equal(t, 0.38, AgeFactor(-1))
}

func TestMakeMultiplier(t *testing.T) {
	assert.Equal(t, 1.06, MakeMultiplier("Toyota"))
	assert.Equal(t, 1.06, MakeMultiplier(" toyota "))
	assert.Equal(t, 0.95, MakeMultiplier("NISSAN"))
	assert.Equal(t, 0.90, MakeMultiplier("chevy"))
	assert.Equal(t, 0.90, MakeMultiplier("Chevrolet"))

	// Unknown makes are neutral.
	assert.Equal(t, 1.00, MakeMultiplier("Yugo"))
}
