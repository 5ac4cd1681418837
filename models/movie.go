package models

import "time"

// Movie represents a title in the store catalog.
// Price is captured in whole currency units.
type Movie struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index:idx_movie_name" json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Rating is a 1..5 star rating, one per user per movie.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_movie_rating" json:"user_id"`
	MovieID   uint      `gorm:"uniqueIndex:idx_user_movie_rating" json:"movie_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a free-form comment left on a movie.
type Review struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Comment string    `json:"comment"`
	Date    time.Time `gorm:"autoCreateTime" json:"date"`
	MovieID uint      `gorm:"index:idx_review_movie" json:"movie_id"`
	UserID  uint      `json:"user_id"`
}
