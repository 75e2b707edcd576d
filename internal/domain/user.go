package domain

import "encoding/json"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u *User) ValidatePassword(password string) bool { return u.Password == password }

// UpdateProfile applies non-empty fields. Phone is the user's identity and
// never changes here.
func (u *User) UpdateProfile(name, dob, location, password string) {
	if name != "" {
		u.Name = name
	}
	if dob != "" {
		u.DOB = dob
	}
	if location != "" {
		u.Location = location
	}
	if password != "" {
		u.Password = password
	}
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	a := alias{Role: RoleUser}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*u = User(a)
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
