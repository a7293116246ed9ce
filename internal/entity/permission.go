package entity

const (
	PermissionViewBoard        = "view_board"
	PermissionManageCards      = "manage_cards"
	PermissionCreateRequests   = "create_requests"
	PermissionApproveRequests  = "approve_requests"
	PermissionManageClients    = "manage_clients"
	PermissionAssignTeams      = "assign_teams"
	PermissionRegisterPayments = "register_payments"
	PermissionManageUsers      = "manage_users"
	PermissionManageSuppliers  = "manage_suppliers"
	PermissionViewFinance      = "view_finance"
	PermissionViewReports      = "view_reports"
)

func GetPermissionsByRole(role Role) []string {
	rolePermissions := map[Role][]string{
		RoleAdmin: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
			PermissionApproveRequests,
			PermissionManageClients,
			PermissionAssignTeams,
			PermissionRegisterPayments,
			PermissionManageUsers,
			PermissionManageSuppliers,
			PermissionViewFinance,
			PermissionViewReports,
		},
		RoleManager: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
			PermissionManageClients,
			PermissionAssignTeams,
			PermissionViewReports,
		},
		RoleCreativeHead: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
			PermissionViewReports,
		},
		RoleContributor: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
		},
		RoleFreelancer: {
			PermissionViewBoard,
			PermissionManageCards,
		},
		RoleClient: {
			PermissionViewBoard,
			PermissionCreateRequests,
		},
		RoleFinance: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
			PermissionApproveRequests,
			PermissionRegisterPayments,
			PermissionManageSuppliers,
			PermissionViewFinance,
			PermissionViewReports,
		},
		RoleCustomerSuccess: {
			PermissionViewBoard,
			PermissionManageCards,
			PermissionCreateRequests,
			PermissionManageClients,
			PermissionViewReports,
		},
	}

	permissions, exists := rolePermissions[role]
	if !exists {
		return []string{PermissionViewBoard}
	}

	return permissions
}

func HasPermission(role Role, permission string) bool {
	for _, p := range GetPermissionsByRole(role) {
		if p == permission {
			return true
		}
	}

	return false
}
