package models

// SummaryStats holds the raw counters of the dashboard snapshot.
type SummaryStats struct {
	TotalUsers    int `json:"totalUsers"`
	BlockedUsers  int `json:"blockedUsers"`
	Favorites     int `json:"favorites"`
	Items         int `json:"items"`
	Tags          int `json:"tags"`
	Feedbacks     int `json:"feedbacks"`
	Reviews       int `json:"reviews"`
	VisitedURLs   int `json:"visitedUrls"`
	RefreshTokens int `json:"refreshTokens"`
}

// LoginAnalytics aggregates customer login activity.
type LoginAnalytics struct {
	TotalLogins          int     `json:"totalLogins"`
	AverageLoginsPerUser float64 `json:"averageLoginsPerUser"`
	MostRecentLogin      string  `json:"mostRecentLogin"`
}

// ItemAnalytics describes one item highlighted by the dashboard.
type ItemAnalytics struct {
	ItemID           string  `json:"itemId"`
	WebsiteName      string  `json:"websitename"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	WebsiteURL       string  `json:"websiteUrl"`
	FavoriteCount    int     `json:"favoriteCount"`
	TotalVisits      int     `json:"totalVisits"`
	UniqueUsersCount int     `json:"uniqueUsersCount"`
	AvgRating        float64 `json:"avgRating"`
	TotalReviews     int     `json:"totalReviews"`
}

// DashboardStats is a point-in-time aggregate snapshot. It is immutable once
// fetched and replaced wholesale on the next fetch.
type DashboardStats struct {
	Summary            SummaryStats   `json:"summary"`
	UserLoginAnalytics LoginAnalytics `json:"userLoginAnalytics"`
	MostFavoritedItem  ItemAnalytics  `json:"mostFavoritedItem"`
	MostVisitedItem    ItemAnalytics  `json:"mostVisitedItem"`
	TopRatedItem       ItemAnalytics  `json:"topRatedItem"`
}
