package models

// ThemePrefix is the class prefix shared by every color theme.
const ThemePrefix = "theme-"

// CampaignPrefix is the class prefix shared by every marketing campaign.
// All campaign classes carry this prefix, on every code path.
const CampaignPrefix = "campaign-"

// ThemeDefault is the sentinel theme id that maps to no theme class.
const ThemeDefault = "default"

// ClassDelta tells the presentation layer how to reconcile document-level
// classes: drop everything matching RemovePrefix, then add Add. State
// transitions stay pure server-side; applying the delta is the client's
// job. At most one class with a given prefix is ever active.
type ClassDelta struct {
	RemovePrefix string   `json:"remove_prefix"`
	Add          []string `json:"add"`
}

// UpdateThemeRequest applies a named color theme
type UpdateThemeRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`
}

// ThemeResponse carries the persisted theme id and the class delta
type ThemeResponse struct {
	ThemeID string     `json:"theme_id"`
	Delta   ClassDelta `json:"delta"`
}

// UpdateCampaignRequest arms or clears the active marketing campaign.
// A null or empty campaign_id clears it.
type UpdateCampaignRequest struct {
	CampaignID *string `json:"campaign_id"`
}

// CampaignResponse carries the persisted campaign id and the class delta
type CampaignResponse struct {
	CampaignID string     `json:"campaign_id"`
	Delta      ClassDelta `json:"delta"`
}
