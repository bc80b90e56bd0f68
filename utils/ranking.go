// utils/ranking.go
package utils

import (
	"sort"

	"github.com/karetou/karetou_backend/models"
)

// TopPerformerLimit is how many businesses the dashboard and reports
// rank by profile views.
const TopPerformerLimit = 5

// TopPerformers returns the businesses with the highest view counts,
// descending, at most limit entries. The input slice is not modified.
func TopPerformers(businesses []models.Business, limit int) []models.Business {
	if limit <= 0 {
		return nil
	}

	ranked := make([]models.Business, len(businesses))
	copy(ranked, businesses)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
