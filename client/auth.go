package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"smartcity-portal/model"
)

// SignIn exchanges registrant credentials for a token and stores the session
// under KeyToken and KeyUser.
func (c *Client) SignIn(ctx context.Context, email, password string) Result[*model.Registration] {
	var resp model.SignInResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", model.LoginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return Fail[*model.Registration](err)
	}
	if err := c.persist(KeyToken, resp.Token, KeyUser, resp.User); err != nil {
		return Fail[*model.Registration](err)
	}
	return Ok(resp.User)
}

// AdminLogin exchanges admin credentials for a token and stores the session
// under KeyAdminToken and KeyAdminData.
func (c *Client) AdminLogin(ctx context.Context, email, password string) Result[*model.Admin] {
	var resp model.AdminLoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/admin/login", model.LoginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return Fail[*model.Admin](err)
	}
	if err := c.persist(KeyAdminToken, resp.Token, KeyAdminData, resp.Admin); err != nil {
		return Fail[*model.Admin](err)
	}
	return Ok(resp.Admin)
}

// Logout forgets the registrant session.
func (c *Client) Logout() error {
	return c.store.Clear(KeyToken, KeyUser)
}

// AdminLogout revokes the admin session on the server and forgets it locally.
// The local session is cleared even when the server cannot be reached.
func (c *Client) AdminLogout(ctx context.Context) Result[struct{}] {
	apiErr := c.do(ctx, http.MethodPost, "/auth/admin/logout", nil, nil, true)
	if err := c.store.Clear(KeyAdminToken, KeyAdminData); err != nil {
		return Fail[struct{}](&Error{Kind: KindTransport, Message: "Could not clear the saved session"})
	}
	if apiErr != nil && apiErr.Kind != KindUnauthenticated {
		return Fail[struct{}](apiErr)
	}
	return Ok(struct{}{})
}

// AdminProfile returns the stored admin identity, if any.
func (c *Client) AdminProfile() (*model.Admin, bool) {
	raw, ok := c.store.Get(KeyAdminData)
	if !ok {
		return nil, false
	}
	var admin model.Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		return nil, false
	}
	return &admin, true
}

func (c *Client) persist(tokenKey, token, profileKey string, profile interface{}) *Error {
	data, err := json.Marshal(profile)
	if err == nil {
		err = errors.Join(c.store.Set(tokenKey, token), c.store.Set(profileKey, string(data)))
	}
	if err != nil {
		return &Error{Kind: KindTransport, Message: "Could not save the session"}
	}
	return nil
}
