package grouppost

type InCreatePost struct {
	Text     string   `json:"text" validate:"required"`
	CarID    *uint    `json:"car_id"`
	Location string   `json:"location"`
	Photos   []string `json:"photos"`
}

type InCreateComment struct {
	Text   string   `json:"text" validate:"required"`
	Photos []string `json:"photos"`
}

type InCreateMessage struct {
	Text   string   `json:"text" validate:"required"`
	Photos []string `json:"photos"`
}
