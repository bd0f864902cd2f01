package models

// Tier — один из пяти диапазонов капитализации. Диапазоны полуоткрытые,
// вместе покрывают [10M, ∞); капа ниже 10M вне скоупа целиком.
type Tier int

const (
	TierNone Tier = iota // cap < 10M, вне скоупа
	TierMicro
	TierSmall
	TierMid
	TierLarge
	TierMega
)

const MinMarketCap = 10_000_000

// границы тиров
const (
	tierSmallFloor = 30_000_000
	tierMidFloor   = 100_000_000
	tierLargeFloor = 300_000_000
	tierMegaFloor  = 1_000_000_000
)

type tierSpec struct {
	name             string
	illiquidityFloor float64
	volCapMin        float64
	volCapMax        float64
}

// Пороги и здоровые диапазоны vol/cap подобраны эмпирически по
// историческим данным ликвидных площадок.
var tierSpecs = map[Tier]tierSpec{
	TierMicro: {"Micro", 0.005, 0.04813, 0.11207},
	TierSmall: {"Small", 0.003, 0.03716, 0.08656},
	TierMid:   {"Mid", 0.002, 0.02584, 0.06522},
	TierLarge: {"Large", 0.001, 0.01763, 0.04981},
	TierMega:  {"Mega", 0.0005, 0.00894, 0.03125},
}

// TierFor выбирает тир по капитализации. Ровно на границе действует
// старший тир: cap=30M — это уже Small, не Micro.
func TierFor(marketCap float64) Tier {
	switch {
	case marketCap < MinMarketCap:
		return TierNone
	case marketCap < tierSmallFloor:
		return TierMicro
	case marketCap < tierMidFloor:
		return TierSmall
	case marketCap < tierLargeFloor:
		return TierMid
	case marketCap < tierMegaFloor:
		return TierLarge
	default:
		return TierMega
	}
}

func (t Tier) String() string {
	if s, ok := tierSpecs[t]; ok {
		return s.name
	}
	return "None"
}

// IlliquidityFloor — минимальный vol/cap, ниже которого инструмент
// считается неликвидным для своего тира.
func (t Tier) IlliquidityFloor() float64 {
	if s, ok := tierSpecs[t]; ok {
		return s.illiquidityFloor
	}
	return 0
}

// VolCapRange — здоровый диапазон vol/cap для тира.
func (t Tier) VolCapRange() (min, max float64) {
	if s, ok := tierSpecs[t]; ok {
		return s.volCapMin, s.volCapMax
	}
	return 0, 0
}

// Tiers — все тиры в порядке возрастания капитализации.
func Tiers() []Tier {
	return []Tier{TierMicro, TierSmall, TierMid, TierLarge, TierMega}
}
