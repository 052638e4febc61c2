package car

type InCreateCar struct {
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Trim  string `json:"trim" validate:"required"`
	Year  *int   `json:"year" validate:"required"`
	Alias string `json:"alias"`
}
