package member

type InSetRole struct {
	Role *int `json:"role" validate:"required,min=1,max=3"`
}
