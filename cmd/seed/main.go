package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anchorchain/internal/database"
	"anchorchain/internal/domain"
	"anchorchain/internal/pkg/logger"
	"anchorchain/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "anchorchain.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	ctx := context.Background()
	manufacturerRepo := repository.NewManufacturerRepository(db)
	sourceRepo := repository.NewSourceRepository(db)

	now := time.Now().UTC()

	for _, m := range seedManufacturers(now) {
		manufacturer := m
		if err := manufacturerRepo.Upsert(ctx, &manufacturer); err != nil {
			log.Fatal("manufacturer upsert failed", zap.String("legal_name", m.LegalName), zap.Error(err))
		}
		log.Info("seeded manufacturer", zap.String("legal_name", manufacturer.LegalName), zap.String("id", manufacturer.ID))

		seedChildren(db, log, &manufacturer)
	}

	for _, b := range seedBidProjects(now) {
		bid := b
		var count int64
		db.Model(&domain.BidProject{}).Where("title = ?", bid.Title).Count(&count)
		if count == 0 {
			if err := db.Create(&bid).Error; err != nil {
				log.Fatal("bid project seed failed", zap.Error(err))
			}
		}
	}

	for _, s := range seedSources() {
		source := s
		if err := sourceRepo.Upsert(ctx, &source); err != nil {
			log.Fatal("source seed failed", zap.String("name", source.Name), zap.Error(err))
		}
	}

	log.Info("database seeded")
}

func seedChildren(db *gorm.DB, log *zap.Logger, m *domain.Manufacturer) {
	suffix := m.ID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}

	certs := []domain.Certification{
		{
			ManufacturerID: m.ID,
			ClassBody:      "LR",
			CertCode:       "LR-" + suffix,
			Scope:          "Stud Link U2/U3, Studless U2/U3",
			ValidFrom:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidTo:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			Status:         domain.CertActive,
		},
		{
			ManufacturerID: m.ID,
			ClassBody:      "ABS",
			CertCode:       "ABS-" + suffix,
			Scope:          "Anchor Chain U2/U3",
			ValidFrom:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			ValidTo:        time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			Status:         domain.CertActive,
		},
	}
	for _, c := range certs {
		cert := c
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cert_code"}},
			DoNothing: true,
		}).Create(&cert).Error
		if err != nil {
			log.Fatal("certification seed failed", zap.Error(err))
		}
	}

	var productCount int64
	db.Model(&domain.Product{}).Where("manufacturer_id = ?", m.ID).Count(&productCount)
	if productCount == 0 {
		products := []domain.Product{
			{
				ManufacturerID: m.ID,
				Category:       domain.CategoryStud,
				Grade:          domain.GradeU2,
				DiameterMin:    16,
				DiameterMax:    122,
				Treatments:     []string{string(domain.TreatmentBitumen)},
				Standards:      []string{"ISO 1704", "OCIMF"},
			},
			{
				ManufacturerID: m.ID,
				Category:       domain.CategoryStudless,
				Grade:          domain.GradeU3,
				DiameterMin:    20,
				DiameterMax:    120,
				Treatments:     []string{string(domain.TreatmentGalvanized)},
				Standards:      []string{"ISO 1704", "EN 1704"},
			},
			{
				ManufacturerID: m.ID,
				Category:       domain.CategoryAnchorFittings,
				Grade:          domain.GradeU2,
				DiameterMin:    16,
				DiameterMax:    100,
				Treatments:     []string{string(domain.TreatmentGalvanized)},
				Standards:      []string{"ISO 1704"},
			},
		}
		for _, p := range products {
			product := p
			if err := db.Create(&product).Error; err != nil {
				log.Fatal("product seed failed", zap.Error(err))
			}
		}
	}

	var facilityCount int64
	db.Model(&domain.Facility{}).Where("manufacturer_id = ?", m.ID).Count(&facilityCount)
	if facilityCount == 0 {
		facility := domain.Facility{
			ManufacturerID:  m.ID,
			Name:            "Main Production Facility",
			Address:         m.Address,
			Longitude:       m.Longitude,
			Latitude:        m.Latitude,
			AnnualCapacity:  30000,
			ProductionLines: []string{"Stud Link", "Studless", "Fittings"},
		}
		if err := db.Create(&facility).Error; err != nil {
			log.Fatal("facility seed failed", zap.Error(err))
		}
	}

	newsURL := "https://example.com/news/" + m.ID
	newsTitle := m.Brand + " Expands Production Capacity"
	var newsCount int64
	db.Model(&domain.NewsItem{}).Where("url = ? AND title = ?", newsURL, newsTitle).Count(&newsCount)
	if newsCount == 0 {
		item := domain.NewsItem{
			ManufacturerID: &m.ID,
			SourceID:       "news-001",
			Publisher:      "Maritime News",
			Title:          newsTitle,
			PublishedAt:    time.Now().UTC().Add(-7 * 24 * time.Hour),
			Lang:           "en",
			Summary:        m.Brand + " announces expansion of their production facility to meet growing demand.",
			URL:            newsURL,
			Status:         domain.NewsActive,
			Entities:       []string{m.LegalName},
			Categories:     []string{"expansion"},
		}
		if err := db.Create(&item).Error; err != nil {
			log.Fatal("news seed failed", zap.Error(err))
		}
	}
}

func seedManufacturers(now time.Time) []domain.Manufacturer {
	verifiedAt := now
	year := func(y int) *int { return &y }

	return []domain.Manufacturer{
		{
			LegalName:      "Jiangsu Anchor Chain Co., Ltd.",
			Brand:          "JAC",
			Aliases:        []string{"JAC Chain", "Jiangsu Anchor"},
			CountryCode:    "CN",
			Address:        "No. 1 Harbor Road, Nantong, Jiangsu, China",
			Longitude:      120.8,
			Latitude:       32.0,
			FoundedYear:    year(1985),
			SiteURL:        "https://www.jacchain.com",
			PublicEmails:   []string{"info@jacchain.com"},
			Phones:         []string{"+86-513-8888-8888"},
			ProfileStatus:  domain.ProfileVerified,
			LastVerifiedAt: &verifiedAt,
		},
		{
			LegalName:      "Ramnäs Bruk AB",
			Brand:          "Ramnäs",
			Aliases:        []string{"Ramnas", "Ramnäs Bruk"},
			CountryCode:    "SE",
			Address:        "Ramnäs, Sweden",
			Longitude:      16.2,
			Latitude:       59.8,
			FoundedYear:    year(1920),
			SiteURL:        "https://www.ramnas.se",
			PublicEmails:   []string{"info@ramnas.se"},
			Phones:         []string{"+46-220-12345"},
			ProfileStatus:  domain.ProfileVerified,
			LastVerifiedAt: &verifiedAt,
		},
		{
			LegalName:      "CMP Group",
			Brand:          "CMP",
			Aliases:        []string{"CMP Marine", "CMP Group"},
			CountryCode:    "IT",
			Address:        "Via Industriale, 1, 25010 Isorella (BS), Italy",
			Longitude:      10.3,
			Latitude:       45.3,
			FoundedYear:    year(1970),
			SiteURL:        "https://www.cmpgroup.it",
			PublicEmails:   []string{"info@cmpgroup.it"},
			Phones:         []string{"+39-030-995-1000"},
			ProfileStatus:  domain.ProfileVerified,
			LastVerifiedAt: &verifiedAt,
		},
		{
			LegalName:      "Peerless Chain Company",
			Brand:          "Peerless",
			Aliases:        []string{"Peerless Chain", "Peerless Marine"},
			CountryCode:    "US",
			Address:        "2000 W. Washington St., Winona, MN 55987, USA",
			Longitude:      -91.6,
			Latitude:       44.0,
			FoundedYear:    year(1900),
			SiteURL:        "https://www.peerlesschain.com",
			PublicEmails:   []string{"info@peerlesschain.com"},
			Phones:         []string{"+1-507-454-2323"},
			ProfileStatus:  domain.ProfileVerified,
			LastVerifiedAt: &verifiedAt,
		},
		{
			LegalName:      "Daido Steel Co., Ltd.",
			Brand:          "Daido",
			Aliases:        []string{"Daido Steel", "Daido Marine"},
			CountryCode:    "JP",
			Address:        "1-1, Nishiki-cho, Naka-ku, Nagoya, Japan",
			Longitude:      136.9,
			Latitude:       35.2,
			FoundedYear:    year(1916),
			SiteURL:        "https://www.daido.co.jp",
			PublicEmails:   []string{"info@daido.co.jp"},
			Phones:         []string{"+81-52-201-2111"},
			ProfileStatus:  domain.ProfileVerified,
			LastVerifiedAt: &verifiedAt,
		},
	}
}

func seedBidProjects(now time.Time) []domain.BidProject {
	return []domain.BidProject{
		{
			Title:       "Large Vessel Anchor Chain Supply",
			Location:    "Singapore",
			Description: "Supply of stud link anchor chain for newbuild container vessel",
			Specifications: datatypes.NewJSONType(domain.BidSpecification{
				Grade:     "U3",
				Diameter:  "76mm",
				Length:    "275m",
				Treatment: "galvanized",
			}),
			Quantity: 275,
			Unit:     "meters",
			Deadline: now.Add(30 * 24 * time.Hour),
			Status:   domain.BidOpen,
			Source:   "Maritime Procurement Portal",
		},
		{
			Title:       "Offshore Platform Mooring Chain",
			Location:    "North Sea",
			Description: "Supply of studless chain for offshore platform mooring system",
			Specifications: datatypes.NewJSONType(domain.BidSpecification{
				Grade:     "R4",
				Diameter:  "120mm",
				Length:    "1000m",
				Treatment: "bitumen",
			}),
			Quantity: 1000,
			Unit:     "meters",
			Deadline: now.Add(45 * 24 * time.Hour),
			Status:   domain.BidOpen,
			Source:   "Offshore Industry News",
		},
	}
}

func seedSources() []domain.SourceCatalog {
	return []domain.SourceCatalog{
		{
			Name:                  "Maritime News RSS",
			URL:                   "https://example.com/maritime-news.rss",
			Type:                  "rss",
			CrawlerType:           "rss",
			RobotsStatus:          "allowed",
			CrawlFrequencyMinutes: 60,
			IsActive:              true,
		},
		{
			Name:                  "Lloyd's Register Certificates",
			URL:                   "https://www.lr.org/en/certificates",
			Type:                  "scraper",
			CrawlerType:           "playwright",
			RobotsStatus:          "allowed",
			CrawlFrequencyMinutes: 1440,
			IsActive:              true,
		},
	}
}
