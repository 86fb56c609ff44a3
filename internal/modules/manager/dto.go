package manager

import "hotelbooking/internal/domain"

// ApprovalResult reports the approved booking together with how many
// competing pending requests the approval pushed to rejected.
type ApprovalResult struct {
	Booking       *domain.Booking `json:"booking"`
	RejectedCount int64           `json:"rejectedCount"`
}
