package models

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	// Password holds the salted PBKDF2 hash, never the plaintext.
	Password string `gorm:"not null" json:"password"`
}
