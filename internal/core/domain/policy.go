package domain

// Access policy for projects. Kept as pure functions so the ownership rule
// lives in one place; future sharing tiers extend here, not at call sites.

// CanView reports whether user may read project. Owners always may;
// admins may read any project.
func CanView(user *User, project *Project) bool {
	if user == nil || project == nil {
		return false
	}
	if user.Role == RoleAdmin {
		return true
	}
	return user.ID == project.OwnerID
}

// CanUpdate reports whether user may mutate project. Strictly owner-only:
// admins can audit but not edit.
func CanUpdate(user *User, project *Project) bool {
	if user == nil || project == nil {
		return false
	}
	return user.ID == project.OwnerID
}
