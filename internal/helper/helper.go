package helper

import (
	"strings"
)

// Префиксы-множители фьючерсных тикеров: 1000SHIB = 1000 штук SHIB.
// Порядок от длинного к короткому, иначе "1000" срежет у "1000000".
var multiplierPrefixes = []struct {
	Token   string
	Divisor float64
}{
	{"1000000", 1_000_000},
	{"100000", 100_000},
	{"10000", 10_000},
	{"1000", 1000},
	{"100", 100},
}

// StripMultiplier снимает префикс-множитель с lower-case базового символа.
// Возвращает нормализованную базу и делитель (>= 1).
func StripMultiplier(base string) (string, float64) {
	for _, p := range multiplierPrefixes {
		if strings.HasPrefix(base, p.Token) && len(base) > len(p.Token) {
			rest := base[len(p.Token):]
			// "1000" не должен резаться в "0" префиксом "100":
			// остаток обязан начинаться с буквы тикера.
			if rest[0] >= '0' && rest[0] <= '9' {
				continue
			}
			return rest, p.Divisor
		}
	}
	return base, 1
}

// FirstNameToken — первый токен display-имени, lower-case.
// "Shiba Inu" -> "shiba".
func FirstNameToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// SecondsIntoUTCDay — сколько секунд прошло с полуночи UTC.
func SecondsIntoUTCDay(unixSec int64) float64 {
	return float64(unixSec % 86_400)
}
