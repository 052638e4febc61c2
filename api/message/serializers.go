package message

type InSendMessage struct {
	Targets []uint   `json:"targets" validate:"required,min=1"`
	Text    string   `json:"text" validate:"required"`
	Photos  []string `json:"photos"`
}
