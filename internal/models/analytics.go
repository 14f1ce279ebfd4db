package models

import "time"

// AnalyticsEvent is a tracked page/content interaction, stored in Postgres
type AnalyticsEvent struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `gorm:"type:varchar(64);not null;column:name"`
	Path        string    `gorm:"type:varchar(255);column:path"`
	ContentType string    `gorm:"type:varchar(16);column:content_type"`
	ContentID   string    `gorm:"type:varchar(64);column:content_id"`
	SessionID   string    `gorm:"type:varchar(64);column:session_id"`
	OccurredAt  time.Time `gorm:"not null;column:occurred_at"`
}

// TableName specifies the table name for AnalyticsEvent
func (AnalyticsEvent) TableName() string {
	return "tory_analytics_events"
}

// ContentCount is an aggregated view-count row for one content record
type ContentCount struct {
	ContentType string `gorm:"column:content_type" json:"contentType"`
	ContentID   string `gorm:"column:content_id" json:"contentId"`
	Views       int64  `gorm:"column:views" json:"views"`
}
