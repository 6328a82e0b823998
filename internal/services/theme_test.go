package services

import (
	"testing"

	"github.com/flortune/app-settings/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestThemeTransition(t *testing.T) {
	tests := []struct {
		name    string
		themeID string
		wantAdd []string
	}{
		{"named theme gains prefix", "ocean", []string{"theme-ocean"}},
		{"already prefixed id passes through", "theme-forest", []string{"theme-forest"}},
		{"default adds nothing", "default", nil},
		{"empty adds nothing", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := ThemeTransition(tt.themeID)
			assert.Equal(t, models.ThemePrefix, delta.RemovePrefix,
				"every transition clears prior theme classes")
			assert.Equal(t, tt.wantAdd, delta.Add)
		})
	}
}

func TestCampaignTransition(t *testing.T) {
	tests := []struct {
		name       string
		campaignID string
		wantAdd    []string
	}{
		{"bare id gains prefix", "spring", []string{"campaign-spring"}},
		{"prefixed id stays intact", "campaign-holiday", []string{"campaign-holiday"}},
		{"empty clears only", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := CampaignTransition(tt.campaignID)
			assert.Equal(t, models.CampaignPrefix, delta.RemovePrefix)
			assert.Equal(t, tt.wantAdd, delta.Add)
		})
	}
}

func TestNormalizeCampaignID(t *testing.T) {
	assert.Equal(t, "spring", NormalizeCampaignID("campaign-spring"))
	assert.Equal(t, "spring", NormalizeCampaignID("spring"))
	assert.Equal(t, "", NormalizeCampaignID(""))
}
