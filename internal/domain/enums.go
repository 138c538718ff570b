package domain

// ReviewStatus is the lifecycle state of a metadata record.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusAccepted ReviewStatus = "accepted"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusEdited   ReviewStatus = "edited"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusAccepted, ReviewStatusRejected, ReviewStatusEdited:
		return true
	}
	return false
}

// IsTerminal reports whether the status is the outcome of a review.
func (s ReviewStatus) IsTerminal() bool {
	return s.IsValid() && s != ReviewStatusPending
}

// AllReviewStatuses lists statuses in dashboard counter order.
func AllReviewStatuses() []ReviewStatus {
	return []ReviewStatus{
		ReviewStatusPending,
		ReviewStatusAccepted,
		ReviewStatusRejected,
		ReviewStatusEdited,
	}
}

// ReviewAction is the reviewer's decision on a pending record.
type ReviewAction string

const (
	ReviewActionAccept ReviewAction = "accept"
	ReviewActionReject ReviewAction = "reject"
	ReviewActionEdit   ReviewAction = "edit"
)

func (a ReviewAction) String() string { return string(a) }

func (a ReviewAction) IsValid() bool {
	switch a {
	case ReviewActionAccept, ReviewActionReject, ReviewActionEdit:
		return true
	}
	return false
}

// ResultStatus returns the status a record ends up in after the action.
func (a ReviewAction) ResultStatus() ReviewStatus {
	switch a {
	case ReviewActionAccept:
		return ReviewStatusAccepted
	case ReviewActionReject:
		return ReviewStatusRejected
	case ReviewActionEdit:
		return ReviewStatusEdited
	}
	return ""
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleReviewer UserRole = "reviewer"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleReviewer, UserRoleAdmin:
		return true
	}
	return false
}
