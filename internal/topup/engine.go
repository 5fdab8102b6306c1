// Package topup applies each company's token top-up to its active users
// and classifies them by email eligibility. It is a pure transformation:
// inputs are assumed schema-valid and nothing here can fail.
package topup

import (
	"sort"

	"github.com/stoik/topup/internal/models"
)

// Process computes one CompanyResult per company that has at least one
// active user, ordered by ascending company id. Within a result the
// emailed and not-emailed lists are ordered by last name.
//
// Inactive users are dropped entirely. Users whose company_id matches no
// company are silently excluded.
func Process(users []models.User, companies []models.Company) []models.CompanyResult {
	sorted := make([]models.Company, len(companies))
	copy(sorted, companies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	groups := groupByCompany(users)

	var results []models.CompanyResult
	for _, company := range sorted {
		result := models.CompanyResult{Company: company}
		for _, user := range groups[company.ID] {
			if !user.ActiveStatus {
				continue
			}
			processed := models.ProcessedUser{
				User:       user,
				NewBalance: user.Tokens + company.TopUp,
			}
			result.TotalTopUps += company.TopUp
			if company.EmailStatus && user.EmailStatus {
				result.Emailed = append(result.Emailed, processed)
			} else {
				result.NotEmailed = append(result.NotEmailed, processed)
			}
		}
		// A company with no active users produces no entry at all.
		if len(result.Emailed) == 0 && len(result.NotEmailed) == 0 {
			continue
		}
		results = append(results, result)
	}
	return results
}

// groupByCompany buckets users by company_id, each bucket sorted by last
// name. The stable sort preserves input order between equal last names.
func groupByCompany(users []models.User) map[int64][]models.User {
	groups := make(map[int64][]models.User)
	for _, user := range users {
		groups[user.CompanyID] = append(groups[user.CompanyID], user)
	}
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].LastName < group[j].LastName
		})
	}
	return groups
}
