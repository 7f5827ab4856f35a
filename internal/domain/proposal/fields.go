package proposal

// Field enumerates the top-level scalar fields of a Proposal.
type Field int

const (
	FieldProposalNumber Field = iota + 1
	FieldIssueDate
	FieldValidUntil
	FieldProjectTitle
	FieldIntroduction
	FieldTermsAndConditions
)

// Fields lists every scalar field in form order.
var Fields = []Field{
	FieldProposalNumber,
	FieldIssueDate,
	FieldValidUntil,
	FieldProjectTitle,
	FieldIntroduction,
	FieldTermsAndConditions,
}

var fieldNames = map[Field]string{
	FieldProposalNumber:     "proposalNumber",
	FieldIssueDate:          "issueDate",
	FieldValidUntil:         "validUntil",
	FieldProjectTitle:       "projectTitle",
	FieldIntroduction:       "introduction",
	FieldTermsAndConditions: "termsAndConditions",
}

// String returns the wire name of the field.
func (f Field) String() string {
	return fieldNames[f]
}

// ParseField maps a wire name to a Field.
func ParseField(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Party selects one of the two contacts.
type Party int

const (
	PartyClient Party = iota + 1
	PartyProvider
)

func (p Party) String() string {
	switch p {
	case PartyClient:
		return "client"
	case PartyProvider:
		return "provider"
	default:
		return ""
	}
}

// ParseParty maps "client" or "provider" to a Party.
func ParseParty(name string) (Party, bool) {
	switch name {
	case "client":
		return PartyClient, true
	case "provider":
		return PartyProvider, true
	default:
		return 0, false
	}
}

// ContactField enumerates the fields of a ContactInfo.
type ContactField int

const (
	ContactName ContactField = iota + 1
	ContactCompanyName
	ContactAddress
	ContactEmail
)

// ContactFields lists every contact field in form order.
var ContactFields = []ContactField{ContactCompanyName, ContactName, ContactAddress, ContactEmail}

var contactFieldNames = map[ContactField]string{
	ContactName:        "name",
	ContactCompanyName: "companyName",
	ContactAddress:     "address",
	ContactEmail:       "email",
}

func (f ContactField) String() string {
	return contactFieldNames[f]
}

// ParseContactField maps a wire name to a ContactField.
func ParseContactField(name string) (ContactField, bool) {
	for f, n := range contactFieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// ServiceField enumerates the editable fields of a ServiceItem.
type ServiceField int

const (
	ServiceDescription ServiceField = iota + 1
	ServiceQuantity
	ServiceUnitPrice
)

// ServiceFields lists every service field in form order.
var ServiceFields = []ServiceField{ServiceDescription, ServiceQuantity, ServiceUnitPrice}

func (f ServiceField) String() string {
	switch f {
	case ServiceDescription:
		return "description"
	case ServiceQuantity:
		return "quantity"
	case ServiceUnitPrice:
		return "unitPrice"
	default:
		return ""
	}
}

// ParseServiceField maps a wire name to a ServiceField.
func ParseServiceField(name string) (ServiceField, bool) {
	for _, f := range ServiceFields {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}
