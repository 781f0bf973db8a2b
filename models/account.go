package models

// Account is a registered user record. The password is stored as given;
// hashing it is a known follow-up before this ever leaves a trusted store.
type Account struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	JoinDate      string `json:"join_date"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// Session is an independent copy of an account's public fields identifying
// the currently signed-in user. It never carries the password.
type Session struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	JoinDate      string `json:"join_date"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// SessionFrom builds a session snapshot from an account record.
func SessionFrom(account Account) Session {
	return Session{
		ID:            account.ID,
		Name:          account.Name,
		Email:         account.Email,
		Phone:         account.Phone,
		Address:       account.Address,
		City:          account.City,
		State:         account.State,
		ZipCode:       account.ZipCode,
		JoinDate:      account.JoinDate,
		LoyaltyPoints: account.LoyaltyPoints,
	}
}
