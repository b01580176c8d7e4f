package client

import (
	"context"
	"net/http"

	"smartcity-portal/model"
	"smartcity-portal/validation"
)

// Form is a registration form that can be submitted with Client.Submit.
type Form interface {
	Validate() []validation.FieldError
	payload() model.SignupRequest
	// formField maps a wire field name reported by the server back to the
	// form's own field name.
	formField(wire string) string
}

// PersonalForm holds the inputs of the personal account form.
type PersonalForm struct {
	FirstName string
	LastName  string
	Gender    string
	Phone     string
	Email     string
	NINNumber string
	Address   string
	Password  string
}

func (f PersonalForm) Validate() []validation.FieldError {
	return validation.ValidatePersonal(validation.PersonalInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Gender:    f.Gender,
		Phone:     f.Phone,
		Email:     f.Email,
		NINNumber: f.NINNumber,
		Address:   f.Address,
		Password:  f.Password,
	})
}

func (f PersonalForm) payload() model.SignupRequest {
	return model.SignupRequest{
		AccountType: model.AccountPersonal,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Gender:      f.Gender,
		Phone:       f.Phone,
		Email:       f.Email,
		NINNumber:   f.NINNumber,
		Address:     f.Address,
		Password:    f.Password,
	}
}

var personalFormFields = map[string]string{
	"first_name": validation.FieldFirstName,
	"last_name":  validation.FieldLastName,
	"gender":     validation.FieldGender,
	"phone":      validation.FieldPhone,
	"email":      validation.FieldEmail,
	"nin_number": validation.FieldNINNumber,
	"address":    validation.FieldAddress,
	"password":   validation.FieldPassword,
}

func (f PersonalForm) formField(wire string) string { return lookupField(personalFormFields, wire) }

// BusinessForm holds the inputs of the business account form.
type BusinessForm struct {
	BusinessName     string
	BusinessType     string
	BusinessEmail    string
	CACNumber        string
	BusinessPhone    string
	BusinessAddress  string
	BusinessPassword string
}

func (f BusinessForm) Validate() []validation.FieldError {
	return validation.ValidateBusiness(validation.BusinessInput{
		BusinessName:     f.BusinessName,
		BusinessType:     f.BusinessType,
		BusinessEmail:    f.BusinessEmail,
		CACNumber:        f.CACNumber,
		BusinessPhone:    f.BusinessPhone,
		BusinessAddress:  f.BusinessAddress,
		BusinessPassword: f.BusinessPassword,
	})
}

func (f BusinessForm) payload() model.SignupRequest {
	return model.SignupRequest{
		AccountType:      model.AccountBusiness,
		BusinessName:     f.BusinessName,
		BusinessType:     f.BusinessType,
		Email:            f.BusinessEmail,
		CACNumber:        f.CACNumber,
		Phone:            f.BusinessPhone,
		BusinessLocation: f.BusinessAddress,
		Password:         f.BusinessPassword,
	}
}

var businessFormFields = map[string]string{
	"business_name":     validation.FieldBusinessName,
	"business_type":     validation.FieldBusinessType,
	"email":             validation.FieldBusinessEmail,
	"cac_number":        validation.FieldCACNumber,
	"phone":             validation.FieldBusinessPhone,
	"business_location": validation.FieldBusinessAddress,
	"password":          validation.FieldBusinessPassword,
}

func (f BusinessForm) formField(wire string) string { return lookupField(businessFormFields, wire) }

func lookupField(fields map[string]string, wire string) string {
	if name, ok := fields[wire]; ok {
		return name
	}
	return wire
}

// Submission is the confirmation state reached after a successful signup.
type Submission struct {
	ApplicationID string
	Email         string
}

// Submit validates form and, only when it is clean, posts it to the signup
// endpoint. The request is never retried.
func (c *Client) Submit(ctx context.Context, form Form) Result[Submission] {
	if errs := form.Validate(); len(errs) > 0 {
		return Fail[Submission](&Error{
			Kind:    KindValidation,
			Message: "Please correct the highlighted fields",
			Fields:  errs,
		})
	}

	payload := form.payload()
	var resp model.SignupResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", payload, &resp, false); err != nil {
		for i, fe := range err.Fields {
			err.Fields[i].Field = form.formField(fe.Field)
		}
		return Fail[Submission](err)
	}

	sub := Submission{Email: payload.Email}
	reg := resp.User
	if reg == nil {
		reg = resp.Business
	}
	if reg != nil {
		sub.ApplicationID = reg.ID
		if reg.Email != "" {
			sub.Email = reg.Email
		}
	}
	return Ok(sub)
}
