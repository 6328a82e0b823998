package services

import (
	"strings"

	"github.com/flortune/app-settings/internal/models"
)

// ThemeTransition computes the class delta for switching to themeID. The
// delta always clears every theme-prefixed class first, so at most one is
// active; the sentinel "default" adds nothing. Unknown ids pass through as
// harmless classes with no matching stylesheet rule.
func ThemeTransition(themeID string) models.ClassDelta {
	delta := models.ClassDelta{RemovePrefix: models.ThemePrefix}
	if themeID != models.ThemeDefault && themeID != "" {
		delta.Add = []string{themeClass(themeID)}
	}
	return delta
}

// themeClass normalizes a theme id to its document class
func themeClass(themeID string) string {
	if strings.HasPrefix(themeID, models.ThemePrefix) {
		return themeID
	}
	return models.ThemePrefix + themeID
}

// CampaignTransition computes the body-class delta for arming campaignID.
// An empty id clears the campaign. Campaign classes always carry the
// campaign- prefix, whichever form the id arrives in.
func CampaignTransition(campaignID string) models.ClassDelta {
	delta := models.ClassDelta{RemovePrefix: models.CampaignPrefix}
	if campaignID != "" {
		delta.Add = []string{campaignClass(campaignID)}
	}
	return delta
}

// campaignClass normalizes a campaign id to its body class
func campaignClass(campaignID string) string {
	if strings.HasPrefix(campaignID, models.CampaignPrefix) {
		return campaignID
	}
	return models.CampaignPrefix + campaignID
}

// NormalizeCampaignID strips the class prefix so the persisted id is
// always the bare campaign name.
func NormalizeCampaignID(campaignID string) string {
	return strings.TrimPrefix(campaignID, models.CampaignPrefix)
}
