package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMultiplier(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		divisor float64
	}{
		{"1000shib", "shib", 1000},
		{"100pepe", "pepe", 100},
		{"10000sats", "sats", 10_000},
		{"1000000mog", "mog", 1_000_000},
		{"btc", "btc", 1},
		{"1000", "1000", 1},   // чистый множитель без базы не режем
		{"10000", "10000", 1}, // и более короткий префикс его не трогает
		{"1000000", "1000000", 1},
		{"10000x", "x", 10_000},
	}
	for _, tc := range cases {
		got, div := StripMultiplier(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.divisor, div, tc.in)
	}
}

func TestFirstNameToken(t *testing.T) {
	assert.Equal(t, "shiba", FirstNameToken("Shiba Inu"))
	assert.Equal(t, "bitcoin", FirstNameToken("Bitcoin"))
	assert.Equal(t, "", FirstNameToken("   "))
}

func TestSecondsIntoUTCDay(t *testing.T) {
	assert.Equal(t, 0.0, SecondsIntoUTCDay(86_400*3))
	assert.Equal(t, 21_600.0, SecondsIntoUTCDay(86_400*3+21_600))
}
