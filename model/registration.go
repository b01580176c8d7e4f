// file: model/registration.go

package model

import (
	"strings"
	"time"
)

// AccountType selects which field group and validation rules apply to a registration.
type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountBusiness AccountType = "business"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountPersonal || t == AccountBusiness
}

// RegistrationStatus is the approval state of a registration.
// A registration leaves StatusPending at most once.
type RegistrationStatus string

const (
	StatusPending     RegistrationStatus = "pending"
	StatusApproved    RegistrationStatus = "approved"
	StatusDisapproved RegistrationStatus = "disapproved"
)

// Registration is a submitted application for a portal account.
// Only the field group matching AccountType is populated.
type Registration struct {
	ID          string             `json:"id"`
	AccountType AccountType        `json:"accountType"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Password    string             `json:"-"`
	Status      RegistrationStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	DecidedAt   *time.Time         `json:"decided_at,omitempty"`

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

// DisplayName returns the applicant's name as shown to admins.
func (r *Registration) DisplayName() string {
	if r.AccountType == AccountBusiness {
		return r.BusinessName
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// Matches reports whether query occurs, case-insensitively, in the email,
// first or last name, business name or phone. An empty query matches everything.
func (r *Registration) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, v := range []string{r.Email, r.FirstName, r.LastName, r.BusinessName, r.Phone} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// FilterRegistrations returns the registrations matching query, preserving order.
func FilterRegistrations(regs []*Registration, query string) []*Registration {
	out := make([]*Registration, 0, len(regs))
	for _, r := range regs {
		if r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}
