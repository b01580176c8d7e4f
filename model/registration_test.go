package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistration_Matches(t *testing.T) {
	personal := &Registration{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Phone: "+2348012345678"}
	business := &Registration{AccountType: AccountBusiness, Email: "hello@josfabrics.ng", BusinessName: "Jos Fabrics", Phone: "08031234567"}

	assert.True(t, personal.Matches(""))
	assert.True(t, personal.Matches("  "))
	assert.True(t, personal.Matches("LOVE"))
	assert.True(t, personal.Matches("example.com"))
	assert.True(t, personal.Matches("801234"))
	assert.False(t, personal.Matches("fabrics"))
	assert.True(t, business.Matches("jos fab"))
	assert.False(t, business.Matches("ada"))

	filtered := FilterRegistrations([]*Registration{personal, business}, "jos")
	assert.Equal(t, []*Registration{business}, filtered)
	assert.Len(t, FilterRegistrations([]*Registration{personal, business}, ""), 2)
}

func TestRegistration_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&Registration{AccountType: AccountPersonal, FirstName: "Ada", LastName: "Lovelace"}).DisplayName())
	assert.Equal(t, "Jos Fabrics", (&Registration{AccountType: AccountBusiness, BusinessName: "Jos Fabrics"}).DisplayName())
	assert.True(t, AccountPersonal.Valid())
	assert.False(t, AccountType("charity").Valid())
}
