// file: model/request.go

package model

import "encoding/json"

// SignupRequest is the wire payload of POST /auth/signup. The accountType
// discriminator decides which of the field groups is read.
type SignupRequest struct {
	AccountType AccountType `json:"accountType"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Password    string      `json:"password"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Gender    string `json:"gender,omitempty"`
	NINNumber string `json:"nin_number,omitempty"`
	Address   string `json:"address,omitempty"`

	BusinessName     string `json:"business_name,omitempty"`
	BusinessType     string `json:"business_type,omitempty"`
	CACNumber        string `json:"cac_number,omitempty"`
	BusinessLocation string `json:"business_location,omitempty"`
}

// UnmarshalJSON also accepts the older account_type key. accountType wins
// when both are present.
func (r *SignupRequest) UnmarshalJSON(data []byte) error {
	type plain SignupRequest
	aux := struct {
		*plain
		LegacyAccountType AccountType `json:"account_type"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.AccountType == "" {
		r.AccountType = aux.LegacyAccountType
	}
	return nil
}

// LoginRequest defines the payload for registrant and admin authentication.
// basicemail is the same rule signup applies, so any registered address can
// sign in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,basicemail"`
	Password string `json:"password" validate:"required"`
}
