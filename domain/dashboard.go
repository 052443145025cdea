package domain

type (
	DashboardStats struct {
		TotalFoods        int64 `json:"totalFoods"`
		ExpiredCount      int64 `json:"expiredCount"`
		ExpiringSoonCount int64 `json:"expiringSoonCount"`
		SafeCount         int64 `json:"safeCount"`
	}

	ExpiringFood struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		ExpiryDate      string  `json:"expiryDate"`
		DaysUntilExpiry int     `json:"daysUntilExpiry"`
		Status          string  `json:"status"`
		Category        *string `json:"category"`
		ImageURL        *string `json:"imageUrl"`
	}

	DashboardResponse struct {
		Stats         DashboardStats `json:"stats"`
		ExpiringFoods []ExpiringFood `json:"expiringFoods"`
		UserPlan      string         `json:"userPlan"`
	}
)

// EmptyDashboard is served to anonymous callers and whenever the dashboard
// cannot be built.
func EmptyDashboard() DashboardResponse {
	return DashboardResponse{
		ExpiringFoods: []ExpiringFood{},
		UserPlan:      PlanFree,
	}
}
