package entity

// Player - one of the two participants of a game. Values are never mutated after NewPlayer.
type Player struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func NewPlayer(name, symbol string) Player {
	if name == "" {
		name = "Player" + symbol
	}

	return Player{
		Name:   name,
		Symbol: symbol,
	}
}
