package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gatepass/internal/domain/gatepass/valueobjects"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"user", RoleRequester, false},
		{"security", RoleSecurity, false},
		{"department_admin", RoleDepartmentAdmin, false},
		{"admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := NewRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestActor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr bool
	}{
		{
			"valid requester",
			Actor{ID: "usr_1", Name: "Jane", Role: RoleRequester},
			false,
		},
		{
			"valid security without department",
			Actor{ID: "usr_2", Name: "Sam", Role: RoleSecurity},
			false,
		},
		{
			"valid department admin",
			Actor{ID: "usr_3", Name: "Alex", Role: RoleDepartmentAdmin, Department: vo.DepartmentHR},
			false,
		},
		{
			"department admin without department",
			Actor{ID: "usr_4", Name: "Alex", Role: RoleDepartmentAdmin},
			true,
		},
		{
			"department admin with unknown department",
			Actor{ID: "usr_5", Name: "Alex", Role: RoleDepartmentAdmin, Department: "Legal"},
			true,
		},
		{
			"missing ID",
			Actor{Name: "Jane", Role: RoleRequester},
			true,
		},
		{
			"missing name",
			Actor{ID: "usr_6", Role: RoleRequester},
			true,
		},
		{
			"unknown role",
			Actor{ID: "usr_7", Name: "Jane", Role: "root"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.actor.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
