package contact

// Form field names as they appear on the wire and in the table.
const (
	FieldEmail       = "email"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldJobTitle    = "job_title"
	FieldPhoneNumber = "phone_number"
	FieldCompany     = "company"
	FieldMessage     = "message"
)

// requiredFields must be present and non-empty on every submission. Order is
// fixed so validation errors enumerate fields deterministically.
var requiredFields = []string{FieldFirstName, FieldLastName, FieldEmail}

// Submission represents a contact form submission. Email is the record
// identity: a later submission with the same email fully replaces the
// earlier one.
type Submission struct {
	Email       string `json:"email" dynamodbav:"email"`
	FirstName   string `json:"first_name" dynamodbav:"first_name"`
	LastName    string `json:"last_name" dynamodbav:"last_name"`
	JobTitle    string `json:"job_title,omitempty" dynamodbav:"job_title,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" dynamodbav:"phone_number,omitempty"`
	Company     string `json:"company,omitempty" dynamodbav:"company,omitempty"`
	Message     string `json:"message,omitempty" dynamodbav:"message,omitempty"`
}

// FromFields builds a Submission from a normalized field mapping. Required
// fields must be present and non-empty; values are taken verbatim, without
// trimming. All missing required fields are reported together.
func FromFields(fields map[string]string) (*Submission, error) {
	var missing []string
	for _, name := range requiredFields {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	return &Submission{
		Email:       fields[FieldEmail],
		FirstName:   fields[FieldFirstName],
		LastName:    fields[FieldLastName],
		JobTitle:    fields[FieldJobTitle],
		PhoneNumber: fields[FieldPhoneNumber],
		Company:     fields[FieldCompany],
		Message:     fields[FieldMessage],
	}, nil
}

// FullName returns the submitter's display name.
func (s *Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}
