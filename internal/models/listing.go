package models

// ExchangeListing — один рынок одной монеты из агрегатора листингов.
// IsFutures — прокси по incentive-флагу площадки, не точная классификация.
type ExchangeListing struct {
	CoinID     string
	Name       string
	Symbol     string
	MarketName string
	IsFutures  bool
}
