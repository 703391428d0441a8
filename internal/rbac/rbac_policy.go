package rbac

const (
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

var teacherResources = []string{"students", "attendance", "reports", "certificates"}

var crudActions = []string{"read", "create", "update", "delete"}

// DefaultPolicies is the static permission table loaded at startup.
func DefaultPolicies() [][]string {
	policies := make([][]string, 0, len(teacherResources)*len(crudActions)+1)
	for _, res := range teacherResources {
		for _, act := range crudActions {
			policies = append(policies, []string{RoleTeacher, res, act})
		}
	}
	policies = append(policies, []string{RoleAdmin, "*", "*"})
	return policies
}

// DefaultGroupings lets ADMIN list every TEACHER permission as its own.
func DefaultGroupings() [][]string {
	return [][]string{{RoleAdmin, RoleTeacher}}
}
