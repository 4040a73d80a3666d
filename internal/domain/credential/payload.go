// Package credential derives the scannable credential payload from an
// approved gate pass request and converts it to and from its JSON wire form.
package credential

// PayloadType marks an encoded blob as a gate pass credential.
const PayloadType = "GATE_PASS"

// Payload is the credential's wire shape. Optional fields are omitted when
// empty; consumers treat an absent field and an empty string the same way.
// The reduced form produced when the full payload exceeds the byte budget
// retains only ID, Name, Department, VisitDate, VisitTime, a truncated
// Purpose, and ApprovedBy.
type Payload struct {
	Type          string `json:"type,omitempty"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Department    string `json:"department"`
	Purpose       string `json:"purpose"`
	VisitDate     string `json:"visitDate"`
	VisitTime     string `json:"visitTime"`
	Duration      string `json:"duration,omitempty"`
	ApprovedBy    string `json:"approvedBy"`
	ApprovedAt    string `json:"approvedAt,omitempty"`
	ValidUntil    string `json:"validUntil,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
}

// IsReduced reports whether the payload lost its issuance fields to the
// byte budget.
func (p *Payload) IsReduced() bool {
	return p.ApprovedAt == "" && p.ValidUntil == ""
}
