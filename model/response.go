// file: model/response.go

package model

// SignupResponse is returned by POST /auth/signup. Exactly one of User or
// Business is set, matching the registration's account type.
type SignupResponse struct {
	Message  string        `json:"message"`
	User     *Registration `json:"user,omitempty"`
	Business *Registration `json:"business,omitempty"`
}

// SignInResponse is returned by POST /auth/signin.
type SignInResponse struct {
	Token string        `json:"token"`
	User  *Registration `json:"user"`
}

// AdminLoginResponse is returned by POST /auth/admin/login.
type AdminLoginResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// DecisionResponse is returned by the approve and disapprove endpoints.
type DecisionResponse struct {
	Message string `json:"message"`
}
