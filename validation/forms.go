package validation

// Field names reported for personal registrations.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldGender    = "gender"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldNINNumber = "ninNumber"
	FieldAddress   = "address"
	FieldPassword  = "password"
)

// Field names reported for business registrations.
const (
	FieldBusinessName     = "businessName"
	FieldBusinessType     = "businessType"
	FieldBusinessEmail    = "businessEmail"
	FieldCACNumber        = "cacNumber"
	FieldBusinessPhone    = "businessPhone"
	FieldBusinessAddress  = "businessAddress"
	FieldBusinessPassword = "businessPassword"
)

// PersonalInput is the candidate payload of a personal account form.
type PersonalInput struct {
	FirstName string
	LastName  string
	Gender    string
	Phone     string
	Email     string
	NINNumber string
	Address   string
	Password  string
}

// BusinessInput is the candidate payload of a business account form.
type BusinessInput struct {
	BusinessName     string
	BusinessType     string
	BusinessEmail    string
	CACNumber        string
	BusinessPhone    string
	BusinessAddress  string
	BusinessPassword string
}

// ValidatePersonal checks a personal registration and returns its errors in
// form order. A nil result means the payload is acceptable.
func ValidatePersonal(in PersonalInput) []FieldError {
	return run([]rule{
		{field: FieldFirstName, label: "First name", value: in.FirstName, checks: []check{
			{tag: "trimmin=2", message: "First name must be at least 2 characters"},
		}},
		{field: FieldLastName, label: "Last name", value: in.LastName, checks: []check{
			{tag: "trimmin=2", message: "Last name must be at least 2 characters"},
		}},
		{field: FieldGender, label: "Gender", value: in.Gender, checks: []check{
			{tag: "oneof=male female", message: "Please select a valid gender"},
		}},
		{field: FieldPhone, label: "Phone number", value: in.Phone, checks: []check{
			{tag: "intlphone", message: "Please enter a valid phone number"},
		}},
		{field: FieldEmail, label: "Email", value: in.Email, checks: []check{
			{tag: "basicemail", message: "Please enter a valid email address"},
		}},
		{field: FieldNINNumber, label: "NIN number", value: in.NINNumber, checks: []check{
			{tag: "trimmin=11", message: "NIN number must be at least 11 characters"},
		}},
		{field: FieldAddress, label: "Address", value: in.Address, checks: []check{
			{tag: "trimmin=10", message: "Address must be at least 10 characters"},
		}},
		{field: FieldPassword, label: "Password", value: in.Password, every: true, checks: passwordChecks()},
	})
}

// ValidateBusiness checks a business registration and returns its errors in
// form order. A nil result means the payload is acceptable.
func ValidateBusiness(in BusinessInput) []FieldError {
	return run([]rule{
		{field: FieldBusinessName, label: "Business name", value: in.BusinessName, checks: []check{
			{tag: "trimmin=2", message: "Business name must be at least 2 characters"},
		}},
		{field: FieldBusinessType, label: "Business type", value: in.BusinessType, checks: []check{
			{tag: "oneof=retail service manufacturing other", message: "Please select a valid business type"},
		}},
		{field: FieldBusinessEmail, label: "Business email", value: in.BusinessEmail, checks: []check{
			{tag: "basicemail", message: "Please enter a valid email address"},
		}},
		{field: FieldCACNumber, label: "CAC number", value: in.CACNumber, checks: []check{
			{tag: "trimmin=5", message: "CAC number must be at least 5 characters"},
		}},
		{field: FieldBusinessPhone, label: "Business phone", value: in.BusinessPhone, checks: []check{
			{tag: "intlphone", message: "Please enter a valid phone number"},
		}},
		{field: FieldBusinessAddress, label: "Business address", value: in.BusinessAddress, checks: []check{
			{tag: "trimmin=10", message: "Business address must be at least 10 characters"},
		}},
		{field: FieldBusinessPassword, label: "Password", value: in.BusinessPassword, every: true, checks: passwordChecks()},
	})
}
