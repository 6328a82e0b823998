package models

import "time"

// LandingContentSlug is the fixed document slug for the single landing page.
const LandingContentSlug = "landing"

// LandingPageContent is the flat marketing copy of the public landing page,
// managed by the admin back-office. No versioning.
type LandingPageContent struct {
	Slug            string    `bson:"slug" json:"-"`
	HeroTitle       string    `bson:"hero_title" json:"hero_title"`
	HeroSubtitle    string    `bson:"hero_subtitle" json:"hero_subtitle"`
	HeroImageURL    string    `bson:"hero_image_url" json:"hero_image_url"`
	FeaturesTitle   string    `bson:"features_title" json:"features_title"`
	PricingTitle    string    `bson:"pricing_title" json:"pricing_title"`
	PricingSubtitle string    `bson:"pricing_subtitle" json:"pricing_subtitle"`
	CTALabel        string    `bson:"cta_label" json:"cta_label"`
	FooterNote      string    `bson:"footer_note" json:"footer_note"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
