// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by hand-written SQL.
// It must stay in sync with data/migrations.
package schema

// # Content Tables

const (
	ArticleCategories = "article_categories"
	ProgramCategories = "program_categories"
	GalleryCategories = "gallery_categories"

	Articles     = "articles"
	Programs     = "programs"
	GalleryItems = "gallery_items"
	Leadership   = "leadership"
	Awards       = "awards"
	Merchandise  = "merchandise"
	Partners     = "partners"
	FAQs         = "faqs"

	ContactMessages = "contact_messages"
)

// # Singleton Sections

const (
	HeroSection         = "hero_section"
	VisionSection       = "vision_section"
	HomeStatistics      = "home_statistics"
	DonationCTA         = "donation_cta"
	ClosingCTA          = "closing_cta"
	HomeImpactSection   = "home_impact_section"
	HomeProgramsSection = "home_programs_section"
	HomePartnersSection = "home_partners_section"
	HomeFAQSection      = "home_faq_section"
	HomeContactSection  = "home_contact_section"
	HistorySection      = "history_section"
	LeadershipSection   = "leadership_section"
)
