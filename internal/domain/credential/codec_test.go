package credential

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/shared/errors"
)

func forwardedRequest(t *testing.T, purpose, vehicleNumber string) *gatepass.Request {
	t.Helper()

	now := time.Now()
	req, err := gatepass.ReconstructRequest(
		"gp_xK9mP2vL3nQw",
		"usr_1",
		"Jane Visitor",
		"jane@example.com",
		"+1234567890",
		purpose,
		vo.DepartmentHR,
		"2026-03-15",
		"10:30",
		vo.DurationTwoHours,
		vehicleNumber,
		vo.StatusForwarded,
		"checked at gate",
		"",
		"",
		"",
		now.Add(-time.Hour),
		now,
	)
	require.NoError(t, err)
	return req
}

func TestCodec_Encode_RoundTrip(t *testing.T) {
	codec := NewCodec(0, 0, "Acme Corp")
	issuedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	req := forwardedRequest(t, "Official meeting", "JH01AB1234")

	text, err := codec.Encode(req, "HR Admin", issuedAt)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), DefaultByteBudget)

	payload, err := codec.Decode(text)
	require.NoError(t, err)

	assert.Equal(t, PayloadType, payload.Type)
	assert.Equal(t, req.ID(), payload.ID)
	assert.Equal(t, "Jane Visitor", payload.Name)
	assert.Equal(t, "jane@example.com", payload.Email)
	assert.Equal(t, "+1234567890", payload.Phone)
	assert.Equal(t, "HR", payload.Department)
	assert.Equal(t, "Official meeting", payload.Purpose)
	assert.Equal(t, "2026-03-15", payload.VisitDate)
	assert.Equal(t, "10:30", payload.VisitTime)
	assert.Equal(t, "2 hours", payload.Duration)
	assert.Equal(t, "HR Admin", payload.ApprovedBy)
	assert.Equal(t, "JH01AB1234", payload.VehicleNumber)
	assert.Equal(t, "Acme Corp", payload.CompanyName)
	assert.False(t, payload.IsReduced())
}

func TestCodec_Encode_ExpirySetFromIssuance(t *testing.T) {
	codec := NewCodec(0, 0, "")
	issuedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	text, err := codec.Encode(forwardedRequest(t, "Meeting", ""), "HR Admin", issuedAt)
	require.NoError(t, err)

	payload, err := codec.Decode(text)
	require.NoError(t, err)

	approvedAt, err := time.Parse(time.RFC3339, payload.ApprovedAt)
	require.NoError(t, err)
	validUntil, err := time.Parse(time.RFC3339, payload.ValidUntil)
	require.NoError(t, err)

	assert.True(t, approvedAt.Equal(issuedAt))
	assert.Equal(t, DefaultValidity, validUntil.Sub(approvedAt))
}

func TestCodec_Encode_ReducesOversizedPayload(t *testing.T) {
	codec := NewCodec(0, 0, "Acme Corp")
	longPurpose := strings.Repeat("a", 2000)

	text, err := codec.Encode(forwardedRequest(t, longPurpose, ""), "HR Admin", time.Now())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), DefaultByteBudget)

	payload, err := codec.Decode(text)
	require.NoError(t, err)

	assert.Len(t, payload.Purpose, 50)
	assert.Equal(t, strings.Repeat("a", 50), payload.Purpose)
	assert.True(t, payload.IsReduced())

	// Reduction keeps only the gate-check essentials.
	assert.Equal(t, "gp_xK9mP2vL3nQw", payload.ID)
	assert.Equal(t, "Jane Visitor", payload.Name)
	assert.Equal(t, "HR", payload.Department)
	assert.Equal(t, "2026-03-15", payload.VisitDate)
	assert.Equal(t, "10:30", payload.VisitTime)
	assert.Equal(t, "HR Admin", payload.ApprovedBy)
	assert.Empty(t, payload.Email)
	assert.Empty(t, payload.Phone)
	assert.Empty(t, payload.CompanyName)
}

func TestCodec_Encode_FailsWhenReducedFormStillOverBudget(t *testing.T) {
	// A budget small enough that even the reduced form cannot fit.
	codec := NewCodec(120, 0, "")

	_, err := codec.Encode(forwardedRequest(t, strings.Repeat("a", 2000), ""), "HR Admin", time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsEncodingError(err))
}

func TestCodec_Encode_RequiresApprover(t *testing.T) {
	codec := NewCodec(0, 0, "")

	_, err := codec.Encode(forwardedRequest(t, "Meeting", ""), "", time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsEncodingError(err))
}

func TestCodec_Decode_MalformedInput(t *testing.T) {
	codec := NewCodec(0, 0, "")

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"not json", "not a credential"},
		{"truncated json", `{"id":"gp_1","name":`},
		{"json array", `[1,2,3]`},
		{"object without id", `{"name":"Jane"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsDecodingError(err))
		})
	}
}

func TestCodec_Decode_MissingOptionalFields(t *testing.T) {
	codec := NewCodec(0, 0, "")

	payload, err := codec.Decode(`{"id":"gp_1","name":"Jane","department":"HR"}`)
	require.NoError(t, err)

	assert.Equal(t, "gp_1", payload.ID)
	assert.Empty(t, payload.VehicleNumber)
	assert.Empty(t, payload.Email)
	assert.Empty(t, payload.ApprovedAt)
	assert.Empty(t, payload.ValidUntil)
}
