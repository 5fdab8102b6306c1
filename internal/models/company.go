package models

// Company represents one record from the companies input file.
type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TopUp       int64  `json:"top_up"`
	EmailStatus bool   `json:"email_status"`
}

// CompanyResult holds the processed users for a single company,
// split by whether they would be emailed about the top-up.
//
// TotalTopUps is company.TopUp times the number of active users
// processed for the company.
type CompanyResult struct {
	Company     Company
	Emailed     []ProcessedUser
	NotEmailed  []ProcessedUser
	TotalTopUps int64
}
