package dashboard

// StatsDTO summarizes a supplier's listings and how often consumers saved
// them. All counts cover active listings only.
type StatsDTO struct {
	TotalBusinesses    int64 `json:"total_businesses"`
	VerifiedBusinesses int64 `json:"verified_businesses"`
	PendingBusinesses  int64 `json:"pending_businesses"`
	TotalFavorites     int64 `json:"total_favorites"`
}
