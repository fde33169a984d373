// Package models defines the persisted library index records.
package models

// Artist is one indexed library artist.
type Artist struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	Name       string  `gorm:"uniqueIndex;size:255" json:"name"`
	AlbumCount int     `json:"albumCount"`
	TrackCount int     `json:"trackCount"`
	Albums     []Album `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"albums,omitempty"`
}

// Album is one indexed library album.
type Album struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	ArtistID   uint   `gorm:"index" json:"-"`
	Title      string `gorm:"size:255" json:"title"`
	TrackCount int    `json:"trackCount"`
	// CoverPath is the object key of the album's cover image, when one was
	// found next to the tracks.
	CoverPath string `json:"coverPath,omitempty"`
}
