package rbac_test

import (
	"testing"

	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRBACRepository struct {
	userRoles map[string][]rbac.UserRoleRow
	rolePerms map[string][]rbac.RolePermissionRow
}

func (r *fakeRBACRepository) GetUserRoles(companyID string) ([]rbac.UserRoleRow, error) {
	return r.userRoles[companyID], nil
}

func (r *fakeRBACRepository) GetRolePermissions(companyID string) ([]rbac.RolePermissionRow, error) {
	return r.rolePerms[companyID], nil
}

func TestEnforce(t *testing.T) {
	companyID := uuid.New().String()
	accountantID := uuid.New().String()
	viewerID := uuid.New().String()
	accountantRole := uuid.New().String()
	viewerRole := uuid.New().String()

	repo := &fakeRBACRepository{
		userRoles: map[string][]rbac.UserRoleRow{
			companyID: {
				{UserID: accountantID, RoleID: accountantRole},
				{UserID: viewerID, RoleID: viewerRole},
			},
		},
		rolePerms: map[string][]rbac.RolePermissionRow{
			companyID: {
				{RoleID: accountantRole, Resource: "payroll", Action: "read"},
				{RoleID: accountantRole, Resource: "payroll", Action: "process"},
				{RoleID: viewerRole, Resource: "payroll", Action: "read"},
			},
		},
	}

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := rbac.NewService(repo, enforcer, nil)

	cases := []struct {
		name    string
		userID  string
		action  string
		allowed bool
	}{
		{"accountant can read", accountantID, "read", true},
		{"accountant can process", accountantID, "process", true},
		{"viewer can read", viewerID, "read", true},
		{"viewer cannot process", viewerID, "process", false},
		{"unknown user denied", uuid.New().String(), "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(rbac.EnforceRequest{
				UserID:    tc.userID,
				CompanyID: companyID,
				Resource:  "payroll",
				Action:    tc.action,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestEnforce_GrantsAreScopedToCompany(t *testing.T) {
	companyA := uuid.New().String()
	companyB := uuid.New().String()
	userID := uuid.New().String()
	roleID := uuid.New().String()

	repo := &fakeRBACRepository{
		userRoles: map[string][]rbac.UserRoleRow{
			companyA: {{UserID: userID, RoleID: roleID}},
		},
		rolePerms: map[string][]rbac.RolePermissionRow{
			companyA: {{RoleID: roleID, Resource: "payroll", Action: "approve"}},
		},
	}

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := rbac.NewService(repo, enforcer, nil)

	allowed, err := svc.Enforce(rbac.EnforceRequest{
		UserID:    userID,
		CompanyID: companyA,
		Resource:  "payroll",
		Action:    "approve",
	})
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(rbac.EnforceRequest{
		UserID:    userID,
		CompanyID: companyB,
		Resource:  "payroll",
		Action:    "approve",
	})
	require.NoError(t, err)
	assert.False(t, allowed)
}
