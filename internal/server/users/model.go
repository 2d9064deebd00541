package users

import "time"

type User struct {
	ID           string
	UserName     string
	Name         string
	Email        string
	Phone        string
	Address      string
	Role         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Record is the JSON form sent to the console. The password hash is never
// included.
func (u *User) Record() map[string]any {
	return map[string]any{
		"_id":       u.ID,
		"username":  u.UserName,
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"address":   u.Address,
		"role":      u.Role,
		"createdAt": u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
