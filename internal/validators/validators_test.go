package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ion.popescu@example.com"))
	assert.False(t, IsEmail("Ion <ion@example.com>"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail(""))
}

func TestIsPhone(t *testing.T) {
	for _, ok := range []string{"+40712345678", "0712345678"} {
		assert.True(t, IsPhone(ok), ok)
	}
	for _, bad := range []string{"712345678", "+4071234567", "07123456789", "07a2345678", ""} {
		assert.False(t, IsPhone(bad), bad)
	}
}

func TestLengthBetween(t *testing.T) {
	assert.True(t, LengthBetween("Ion", 2, 100))
	assert.False(t, LengthBetween("I", 2, 100))
	assert.True(t, LengthBetween("Ștefănescu", 2, 10))
}
