package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentIsPopulated(t *testing.T) {
	assert.NotEmpty(t, Banners())
	assert.NotEmpty(t, Features())
	assert.NotEmpty(t, Testimonials())
	assert.NotEmpty(t, Team())
	assert.NotEmpty(t, FAQ())
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := Banners()
	b[0].Title = "changed"
	assert.NotEqual(t, "changed", Banners()[0].Title)
}
