package dto

type SignInResponse struct {
	AccessToken string `json:"access_token"`
}
