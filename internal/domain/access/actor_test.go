package access

import "testing"

func TestIsSchedulerPrivileged(t *testing.T) {
	cases := map[Role]bool{
		RoleProvider:  false,
		RoleScheduler: true,
		RoleAdmin:     true,
		"":            false,
		"owner":       false,
	}
	for role, want := range cases {
		if got := (Actor{Role: role}).IsSchedulerPrivileged(); got != want {
			t.Fatalf("role %q: expected %v, got %v", role, want, got)
		}
	}
}
