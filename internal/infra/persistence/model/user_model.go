package model

import "time"

// UserModel mirrors the 'users' table. ExternalID is the identity provider's key.
type UserModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"type:varchar(128);not null;uniqueIndex:idx_users_external_id"`
	FirstName  string `gorm:"type:varchar(100)"`
	LastName   string `gorm:"type:varchar(100)"`
	Nickname   string `gorm:"type:varchar(100)"`
	Email      string `gorm:"type:varchar(255);index"`
	ImageRef   string `gorm:"type:varchar(1024)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteModel mirrors the 'favorites' table keyed by (user_id, recipe_id).
type FavoriteModel struct {
	UserID    string `gorm:"type:varchar(128);primaryKey"`
	RecipeID  int64  `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Rating    float64 `gorm:"not null"`
	Text      string  `gorm:"type:text"`
	UserID    string  `gorm:"type:varchar(128);index"`
	RecipeID  int64   `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
