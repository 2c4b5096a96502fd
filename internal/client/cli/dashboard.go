package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// ShowStats fetches the dashboard snapshot and renders the summary counters,
// login analytics and item highlights.
func (a *App) ShowStats(ctx context.Context) error {
	if err := a.dashboard.Fetch(ctx); err != nil {
		banner(a.out, a.dashboard.Err())
		return err
	}

	stats := a.dashboard.Stats()
	if stats == nil {
		fmt.Fprintln(a.out, "No dashboard data.")
		return nil
	}

	s := stats.Summary
	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Users\tBlocked\tItems\tTags\tFavorites\tReviews\tFeedbacks")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
		s.TotalUsers, s.BlockedUsers, s.Items, s.Tags, s.Favorites, s.Reviews, s.Feedbacks)
	tw.Flush()

	la := stats.UserLoginAnalytics
	fmt.Fprintf(a.out, "Logins: %d total, %.1f per user, last at %s\n",
		la.TotalLogins, la.AverageLoginsPerUser, la.MostRecentLogin)

	a.renderHighlight("Most favorited", stats.MostFavoritedItem)
	a.renderHighlight("Most visited", stats.MostVisitedItem)
	a.renderHighlight("Top rated", stats.TopRatedItem)
	return nil
}

func (a *App) renderHighlight(label string, it models.ItemAnalytics) {
	if it.ItemID == "" {
		return
	}
	fmt.Fprintf(a.out, "%s: %s (%s) favorites=%d visits=%d rating=%.1f\n",
		label, it.WebsiteName, it.Category, it.FavoriteCount, it.TotalVisits, it.AvgRating)
}
