package models

import (
	"fmt"
	"time"
)

// PopupType identifies one promotional/informational overlay category.
type PopupType string

const (
	PopupMaintenance PopupType = "maintenance"
	PopupPromotion   PopupType = "promotion"
	PopupNewsletter  PopupType = "newsletter"
)

// PopupTypes lists every known popup type.
var PopupTypes = []PopupType{PopupMaintenance, PopupPromotion, PopupNewsletter}

// Valid reports whether t is a known popup type
func (t PopupType) Valid() bool {
	for _, known := range PopupTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PopupColor is the accent color of a popup.
type PopupColor string

const (
	PopupColorPrimary     PopupColor = "primary"
	PopupColorDestructive PopupColor = "destructive"
	PopupColorAmber       PopupColor = "amber"
	PopupColorBlue        PopupColor = "blue"
)

// Valid reports whether c is a known popup color
func (c PopupColor) Valid() bool {
	switch c {
	case PopupColorPrimary, PopupColorDestructive, PopupColorAmber, PopupColorBlue:
		return true
	}
	return false
}

// FrequencyUnit is the unit of the optional display frequency.
type FrequencyUnit string

const (
	FrequencyHours FrequencyUnit = "horas"
	FrequencyDays  FrequencyUnit = "dias"
)

// PopupConfig is the stored configuration of one popup type. Display
// timing (date range, frequency) is interpreted by the presentation layer;
// this service only stores it, but rejects inverted date ranges at write
// time.
type PopupConfig struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Icon           string         `json:"icon"`
	Color          PopupColor     `json:"color"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
	FrequencyValue *int           `json:"frequency_value,omitempty"`
	FrequencyUnit  *FrequencyUnit `json:"frequency_unit,omitempty"`
}

// Validate checks the config's enums and date range
func (c PopupConfig) Validate() error {
	if c.Color != "" && !c.Color.Valid() {
		return fmt.Errorf("unknown popup color %q", c.Color)
	}
	if c.FrequencyUnit != nil && *c.FrequencyUnit != FrequencyHours && *c.FrequencyUnit != FrequencyDays {
		return fmt.Errorf("unknown frequency unit %q", *c.FrequencyUnit)
	}
	if c.FrequencyValue != nil && *c.FrequencyValue <= 0 {
		return fmt.Errorf("frequency value must be positive")
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return fmt.Errorf("start date %s is after end date %s",
			c.StartDate.Format(time.RFC3339), c.EndDate.Format(time.RFC3339))
	}
	return nil
}

// MergePopupConfigsRequest merges partial per-type updates into the stored map
type MergePopupConfigsRequest struct {
	Configs map[PopupType]PopupConfig `json:"configs" binding:"required"`
}

// SetActivePopupRequest arms one popup type, or clears the selection when
// type is null.
type SetActivePopupRequest struct {
	Type *PopupType `json:"type"`
}

// PopupsResponse carries the full config map and the armed popup type
type PopupsResponse struct {
	Configs map[PopupType]PopupConfig `json:"configs"`
	Active  *PopupType                `json:"active"`
}
