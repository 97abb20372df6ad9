package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduport/models"
)

func TestFormatPriceIDR(t *testing.T) {
	assert.Equal(t, "Rp 150.000", FormatPriceIDR(10))
	assert.Equal(t, "Rp 75.000", FormatPriceIDR(5))
	assert.Equal(t, "Rp 0", FormatPriceIDR(0))
	assert.Equal(t, "Rp 1.500.000", FormatPriceIDR(100))
	assert.Equal(t, "Rp 7.500", FormatPriceIDR(0.5))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "BS", Initials(models.User{FullName: "Budi Santoso"}))
	assert.Equal(t, "BW", Initials(models.User{FullName: "Budi Agus Wibowo"}))
	assert.Equal(t, "BU", Initials(models.User{FullName: "Budi"}))
	assert.Equal(t, "AN", Initials(models.User{Username: "anita"}))
	assert.Equal(t, "U", Initials(models.User{}))
	// whitespace-only full name falls through to the username
	assert.Equal(t, "AN", Initials(models.User{FullName: "   ", Username: "anita"}))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4.2))
	assert.Equal(t, "★★★★★", Stars(4.6))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
}

func TestNewCourseCard(t *testing.T) {
	card := NewCourseCard(models.Course{ID: 1, Title: "Go", Price: 10, AverageRating: 4.5, TotalReviews: 12})
	assert.True(t, card.HasRating)
	assert.Equal(t, "Rp 150.000", card.Price)
	assert.Equal(t, 12, card.Reviews)

	// missing stats must render as "no rating", never fail
	bare := NewCourseCard(models.Course{ID: 2, Price: 5})
	assert.False(t, bare.HasRating)
	assert.Empty(t, bare.Stars)
}
