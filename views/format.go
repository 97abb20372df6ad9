package views

import (
	"math"
	"strconv"
	"strings"

	"eduport/models"
)

// usdToIDR is the fixed conversion rate applied before display. Course
// prices arrive in USD.
const usdToIDR = 15000

// FormatPriceIDR renders a course price in rupiah with Indonesian thousand
// separators: FormatPriceIDR(10) == "Rp 150.000".
func FormatPriceIDR(price float64) string {
	n := int64(math.Round(price * usdToIDR))

	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "Rp " + b.String()
	if neg {
		out = "Rp -" + b.String()
	}
	return out
}

// Initials derives the avatar initials: first and last name initials when
// the full name has two words, the first two letters of a single name,
// falling back to the username and finally to "U".
func Initials(user models.User) string {
	names := strings.Fields(strings.TrimSpace(user.FullName))
	switch {
	case len(names) >= 2:
		return strings.ToUpper(firstRune(names[0]) + firstRune(names[len(names)-1]))
	case len(names) == 1:
		return strings.ToUpper(prefix(names[0], 2))
	}
	if user.Username != "" {
		return strings.ToUpper(prefix(user.Username, 2))
	}
	return "U"
}

// Stars renders a 1-5 rating as filled and hollow stars, rounding to the
// nearest whole star.
func Stars(rating float64) string {
	filled := int(math.Round(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return string(r)
	}
	return string(r[:n])
}
