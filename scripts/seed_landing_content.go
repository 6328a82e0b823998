package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/flortune/app-settings/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedContent is the initial landing-page copy
var SeedContent = models.LandingPageContent{
	Slug:            models.LandingContentSlug,
	HeroTitle:       "Your finances, in bloom",
	HeroSubtitle:    "Track transactions, budgets and goals in one place.",
	FeaturesTitle:   "Everything a growing business needs",
	PricingTitle:    "Simple pricing",
	PricingSubtitle: "Start free, upgrade when you grow.",
	CTALabel:        "Get started",
	FooterNote:      "Flortune - personal finance and small business management.",
}

func main() {
	fmt.Println("🌱 Seeding landing page content...")

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize MongoDB
	config.InitMongoDB()
	if config.MongoDB == nil {
		log.Fatal("Failed to initialize MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := config.MongoDB.Collection(config.AppConfig.LandingContentCollection)

	// Check if content already exists
	count, err := collection.CountDocuments(ctx, bson.M{"slug": models.LandingContentSlug})
	if err != nil {
		log.Fatalf("Failed to count existing content: %v", err)
	}

	if count > 0 {
		fmt.Print("⚠️  Landing content already exists. Do you want to replace it? (y/N): ")
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			fmt.Println("❌ Error reading input")
			return
		}
		if response != "y" && response != "Y" {
			fmt.Println("❌ Seeding cancelled")
			return
		}
	}

	content := SeedContent
	content.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"slug": models.LandingContentSlug}, content, opts); err != nil {
		log.Fatalf("Failed to seed landing content: %v", err)
	}

	fmt.Println("✅ Successfully seeded landing page content:")
	fmt.Printf("  [%s] %s - %s\n", content.Slug, content.HeroTitle, content.HeroSubtitle)
	fmt.Println("\n🎉 Seeding completed successfully!")
}
