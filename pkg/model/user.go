package model

// UserConfig is one entry of the users file, keyed by the caller's API key.
type UserConfig struct {
	Name             string `json:"name"`
	NotionDatabaseID string `json:"notion_database_id"`
	NotionAPIKey     string `json:"notion_api_key"`
}
