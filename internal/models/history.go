package models

import "time"

// SettingChange is one audit record of a settings write. Records expire
// from Mongo via a TTL index after 90 days.
type SettingChange struct {
	Scope     string    `bson:"scope" json:"scope"`
	Key       string    `bson:"key" json:"key"`
	Previous  string    `bson:"previous,omitempty" json:"previous,omitempty"`
	Value     string    `bson:"value" json:"value"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// SettingHistoryResponse is the history read format
type SettingHistoryResponse struct {
	Changes []SettingChange `json:"changes"`
}
