package credential

import (
	"encoding/json"
	"fmt"
	"time"

	"gatepass/internal/domain/gatepass"
	"gatepass/internal/shared/errors"
)

const (
	// DefaultByteBudget is the maximum serialized payload size in bytes.
	DefaultByteBudget = 500
	// DefaultValidity is the credential validity window from issuance.
	DefaultValidity = 24 * time.Hour

	// truncatedPurposeRunes is the purpose length retained in the reduced form.
	truncatedPurposeRunes = 50
)

// Codec encodes approved requests into the credential wire form and decodes
// stored blobs back. Both directions are pure; the codec holds only
// configuration.
type Codec struct {
	byteBudget  int
	validity    time.Duration
	companyName string
}

func NewCodec(byteBudget int, validity time.Duration, companyName string) *Codec {
	if byteBudget <= 0 {
		byteBudget = DefaultByteBudget
	}
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Codec{
		byteBudget:  byteBudget,
		validity:    validity,
		companyName: companyName,
	}
}

// Encode derives the credential payload for a request being approved and
// serializes it. If the full form exceeds the byte budget, a reduced form is
// produced once; if the reduced form still exceeds the budget, an encoding
// error is returned rather than shrinking further.
func (c *Codec) Encode(req *gatepass.Request, approvedBy string, issuedAt time.Time) (string, error) {
	if req == nil {
		return "", errors.NewEncodingError("request is required")
	}
	if len(approvedBy) == 0 {
		return "", errors.NewEncodingError("approver identity is required")
	}

	payload := Payload{
		Type:          PayloadType,
		ID:            req.ID(),
		Name:          req.RequesterName(),
		Email:         req.RequesterEmail(),
		Phone:         req.RequesterPhone(),
		Department:    req.Department().String(),
		Purpose:       req.Purpose(),
		VisitDate:     req.VisitDate(),
		VisitTime:     req.VisitTime(),
		Duration:      req.Duration().String(),
		ApprovedBy:    approvedBy,
		ApprovedAt:    issuedAt.UTC().Format(time.RFC3339),
		ValidUntil:    issuedAt.UTC().Add(c.validity).Format(time.RFC3339),
		VehicleNumber: req.VehicleNumber(),
		CompanyName:   c.companyName,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.NewEncodingError("failed to serialize credential payload", err.Error())
	}

	if len(data) <= c.byteBudget {
		return string(data), nil
	}

	reduced := Payload{
		ID:         req.ID(),
		Name:       req.RequesterName(),
		Department: req.Department().String(),
		Purpose:    truncateRunes(req.Purpose(), truncatedPurposeRunes),
		VisitDate:  req.VisitDate(),
		VisitTime:  req.VisitTime(),
		ApprovedBy: approvedBy,
	}

	data, err = json.Marshal(reduced)
	if err != nil {
		return "", errors.NewEncodingError("failed to serialize reduced credential payload", err.Error())
	}

	// Reduction is one-shot. No iterative shrinking beyond this point.
	if len(data) > c.byteBudget {
		return "", errors.NewEncodingError(
			"credential payload exceeds byte budget after reduction",
			fmt.Sprintf("%d bytes, budget %d", len(data), c.byteBudget),
		)
	}

	return string(data), nil
}

// Decode parses a stored credential blob. Missing optional fields decode to
// their empty values; a blob that is not a JSON object carrying a request id
// is malformed.
func (c *Codec) Decode(text string) (*Payload, error) {
	if len(text) == 0 {
		return nil, errors.NewDecodingError("credential payload is empty")
	}

	var payload Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, errors.NewDecodingError("malformed credential payload", err.Error())
	}

	if payload.ID == "" {
		return nil, errors.NewDecodingError("credential payload missing request id")
	}

	return &payload, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
