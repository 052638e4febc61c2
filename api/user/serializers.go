package user

type InUpdateProfile struct {
	Avatar    *string `json:"avatar"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
}
