package entity

type Admin struct {
	AdminName string `db:"admin_name"`
	Email     string `db:"email"`
	Password  string `db:"password"` // bcrypt hash
}
