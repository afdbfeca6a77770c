package dto

import "github.com/ssms/scholarship/internal/app/models"

// RecentAllocationsResponse is the body of GET /dashboard/recent-allocations/
type RecentAllocationsResponse struct {
	RecentAllocations []models.RecentAllocation `json:"recent_allocations"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
