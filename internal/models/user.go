package models

// User represents one record from the users input file.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CompanyID    int64  `json:"company_id"`
	EmailStatus  bool   `json:"email_status"`
	ActiveStatus bool   `json:"active_status"`
	Tokens       int64  `json:"tokens"`
}

// ProcessedUser is a user whose top-up has been applied.
// It is only ever built for users with ActiveStatus set.
type ProcessedUser struct {
	User
	NewBalance int64 `json:"new_balance"`
}
