package config

// BoardConfig holds pagination and display settings for the conference board.
// DisplayYear is the year printed for day-month dates; it is not derived from
// the listing data.
type BoardConfig struct {
	PageSize          int `env:"PAGE_SIZE" envDefault:"15"`
	MaxVisibleButtons int `env:"MAX_VISIBLE_BUTTONS" envDefault:"5"`
	DisplayYear       int `env:"DISPLAY_YEAR" envDefault:"2024"`
}
