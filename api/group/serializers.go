package group

type InCreateGroup struct {
	Name        string `json:"name" validate:"required"`
	IsPrivate   *bool  `json:"is_private" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type InUpdateGroup struct {
	Name        string `json:"name" validate:"required"`
	IsPrivate   *bool  `json:"is_private"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
