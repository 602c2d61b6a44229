package response

import "invoice-service/internal/usecase/readmodel"

type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	User        *readmodel.AccountRM `json:"user"`
}
