package auth

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

const (
	PermEmployeesList  = "employees.list"
	PermEmployeesRead  = "employees.read"
	PermEmployeesWrite = "employees.write"
	PermLeaveSelf      = "leave.self"
	PermLeaveRead      = "leave.read"
	PermLeaveWrite     = "leave.write"
	PermLeaveApprove   = "leave.approve"
	PermPayrollSelf    = "payroll.self"
	PermPayrollRead    = "payroll.read"
	PermPayrollRun     = "payroll.run"
	PermUsersManage    = "users.manage"
	PermTasksSelf      = "tasks.self"
	PermTasksManage    = "tasks.manage"
	PermJobRolesWrite  = "jobroles.write"
	PermContactRead    = "contact.read"
)

// RolePermissions lists what each role may do. Reads of a single employee's
// records are further narrowed by CanAccessEmployee.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermEmployeesList,
		PermEmployeesRead,
		PermEmployeesWrite,
		PermLeaveSelf,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollSelf,
		PermPayrollRead,
		PermPayrollRun,
		PermUsersManage,
		PermTasksSelf,
		PermTasksManage,
		PermJobRolesWrite,
		PermContactRead,
	},
	RoleUser: {
		PermEmployeesRead,
		PermLeaveSelf,
		PermLeaveRead,
		PermPayrollSelf,
		PermPayrollRead,
		PermTasksSelf,
	},
	RoleGuest: {},
}

func ValidRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}

func HasPermission(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// CanAccessEmployee reports whether the caller may read records that belong to
// employeeID. Admins see everyone; users only their associated employee.
func CanAccessEmployee(user UserContext, employeeID string) bool {
	if user.Role == RoleAdmin {
		return true
	}
	return user.Role == RoleUser && user.EmployeeID != "" && user.EmployeeID == employeeID
}
