package seeders

import (
	"log"

	"agevee-booking/models/district"
	"agevee-booking/models/listing"

	"gorm.io/gorm"
)

// placeholderOwner marks catalog listings that predate any real business
// account. Bookings against them still resolve an owner and surface in
// the admin feed.
const placeholderOwner = "mock_owner"

func SeedListings(db *gorm.DB) {
	log.Printf("🔍 Checking listing data integrity...")

	listings := []listing.Listing{
		{
			ID:          "h1",
			Name:        "Shangrila Resort",
			Type:        listing.TypeHotel,
			DistrictID:  "d1",
			Description: "Heaven on Earth. Luxury stay by the lake.",
			PriceLevel:  5,
			Rating:      4.8,
			Contact:     "+92-5815-123456",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4a/Shangrila_Resort_Skardu.jpg/800px-Shangrila_Resort_Skardu.jpg",
			Features:    district.StringSlice{"Lake View", "Restaurant", "Boating"},
			Rooms: listing.RoomOptions{
				{ID: "r1", Name: "Lake View Executive", Price: 250, Capacity: 2, Features: []string{"King Bed", "Balcony", "Breakfast"}},
				{ID: "r2", Name: "Swiss Cottage", Price: 180, Capacity: 3, Features: []string{"Mountain View", "Private Lawn"}},
				{ID: "r3", Name: "Standard Room", Price: 120, Capacity: 2, Features: []string{"Queen Bed", "Wifi"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "a1",
			Name:        "K2 Trekkers",
			Type:        listing.TypeAgency,
			DistrictID:  "d1",
			Description: "Professional expeditions to K2 and Broad Peak.",
			PriceLevel:  4,
			Rating:      4.9,
			Contact:     "info@k2trekkers.com",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/1/12/K2_2006b.jpg/800px-K2_2006b.jpg",
			Features:    district.StringSlice{"Mountaineering", "Trekking", "Permits"},
			Packages: listing.TourPackages{
				{ID: "p1", Name: "K2 Base Camp Trek", Price: 1500, Duration: "20 Days", Features: []string{"Full Board", "Guide", "Porters"}},
				{ID: "p2", Name: "Deosai Jeep Safari", Price: 400, Duration: "3 Days", Features: []string{"Jeep", "Camping", "Meals"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "g1",
			Name:        "Ali Karim",
			Type:        listing.TypeGuide,
			DistrictID:  "d2",
			Description: "Local expert in Hunza culture and history.",
			PriceLevel:  2,
			Rating:      4.7,
			Contact:     "ali.hunza@example.com",
			Image:       "https://images.unsplash.com/photo-1596706056581-229f3d917820?q=80&w=800&auto=format&fit=crop",
			Features:    district.StringSlice{"English Speaking", "History Expert", "Hiking"},
			Packages: listing.TourPackages{
				{ID: "gp1", Name: "Hunza Culture Walk", Price: 50, Duration: "1 Day", Features: []string{"Fort Tour", "Local Food"}},
				{ID: "gp2", Name: "Passu Glacier Hike", Price: 80, Duration: "1 Day", Features: []string{"Trekking Gear", "Transport"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "h2",
			Name:        "Serena Gilgit",
			Type:        listing.TypeHotel,
			DistrictID:  "d3",
			Description: "A sanctuary of comfort in the heart of Gilgit.",
			PriceLevel:  5,
			Rating:      4.6,
			Contact:     "+92-5811-987654",
			Image:       "https://cf.bstatic.com/xdata/images/hotel/max1024x768/49585610.jpg",
			Features:    district.StringSlice{"Luxury", "Wifi", "Airport Shuttle"},
			Rooms: listing.RoomOptions{
				{ID: "sr1", Name: "Deluxe Suite", Price: 200, Capacity: 2, Features: []string{"City View", "Lounge"}},
				{ID: "sr2", Name: "Executive Room", Price: 150, Capacity: 2, Features: []string{"Work Desk", "Buffet Breakfast"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "g2",
			Name:        "Mountain Nomads",
			Type:        listing.TypeAgency,
			DistrictID:  "d5",
			Description: "Fishing and camping tours in Ghizer.",
			PriceLevel:  3,
			Rating:      4.5,
			Contact:     "nomads@ghizer.com",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6f/Fishing_in_Phander_Lake.jpg/800px-Fishing_in_Phander_Lake.jpg",
			Features:    district.StringSlice{"Fishing", "Camping", "Family Trips"},
			Packages: listing.TourPackages{
				{ID: "mp1", Name: "Phander Trout Fishing", Price: 300, Duration: "3 Days", Features: []string{"Fishing Gear", "Camping"}},
				{ID: "mp2", Name: "Shandur Polo Festival", Price: 500, Duration: "5 Days", Features: []string{"Transport", "VIP Seating"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "h3",
			Name:        "Khaplu Palace Heritage Hotel",
			Type:        listing.TypeHotel,
			DistrictID:  "d7",
			Description: "Experience royalty in the restored royal residence of Khaplu.",
			PriceLevel:  5,
			Rating:      4.9,
			Contact:     "+92-5816-450892",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d4/Khaplu_Fort%2C_Baltistan.jpg/800px-Khaplu_Fort%2C_Baltistan.jpg",
			Features:    district.StringSlice{"Heritage", "Museum", "Organic Food"},
			Rooms: listing.RoomOptions{
				{ID: "kr1", Name: "Royal Suite", Price: 300, Capacity: 2, Features: []string{"Historical Interior", "Mountain View"}},
				{ID: "kr2", Name: "Heritage Room", Price: 220, Capacity: 2, Features: []string{"Traditional Decor", "Breakfast"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "g_ghanche_1",
			Name:        "Hushe Valley Guides",
			Type:        listing.TypeGuide,
			DistrictID:  "d7",
			Description: "Expert local guides for Masherbrum and Hushe treks.",
			PriceLevel:  3,
			Rating:      4.8,
			Contact:     "hushe.guides@example.com",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/9/91/Hushe_Valley_Ghanche.jpg/800px-Hushe_Valley_Ghanche.jpg",
			Features:    district.StringSlice{"Mountaineering", "Local Language", "Rescue Certified"},
			Packages: listing.TourPackages{
				{ID: "hg1", Name: "Masherbrum Base Camp", Price: 100, Duration: "5 Days", Features: []string{"Guide", "Maps"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "a_ghanche_1",
			Name:        "Masherbrum Tours",
			Type:        listing.TypeAgency,
			DistrictID:  "d7",
			Description: "Specializing in expeditions to the hidden valleys of Ghanche.",
			PriceLevel:  4,
			Rating:      4.7,
			Contact:     "info@masherbrumtours.com",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/3/31/Masherbrum_Peak.jpg/800px-Masherbrum_Peak.jpg",
			Features:    district.StringSlice{"Expeditions", "Cultural Tours", "Jeep Safari"},
			Packages: listing.TourPackages{
				{ID: "mt1", Name: "Hushe Village Tour", Price: 200, Duration: "2 Days", Features: []string{"Jeep", "Homestay"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "h_kharmang_1",
			Name:        "Manthoka Serene Resort",
			Type:        listing.TypeHotel,
			DistrictID:  "d8",
			Description: "Stay right next to the mesmerizing Manthoka Waterfall. Lush green surroundings.",
			PriceLevel:  3,
			Rating:      4.5,
			Contact:     "+92-5815-998877",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a9/Manthokha_Waterfall_Kharmang.jpg/800px-Manthokha_Waterfall_Kharmang.jpg",
			Features:    district.StringSlice{"Waterfall View", "Camping Pods", "Local Cuisine"},
			Rooms: listing.RoomOptions{
				{ID: "mr1", Name: "Waterfall View Cottage", Price: 100, Capacity: 2, Features: []string{"Balcony", "King Bed"}},
				{ID: "mr2", Name: "Camping Pod", Price: 40, Capacity: 2, Features: []string{"Shared Bath", "Sleeping Bag"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
		{
			ID:          "a_kharmang_1",
			Name:        "Kharmang Eco Tours",
			Type:        listing.TypeAgency,
			DistrictID:  "d8",
			Description: "Discover the hidden waterfalls and culture of Kharmang district.",
			PriceLevel:  3,
			Rating:      4.6,
			Contact:     "info@kharmangtours.com",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/7/70/Indus_River_Kharmang.jpg/800px-Indus_River_Kharmang.jpg",
			Features:    district.StringSlice{"Cultural Tours", "Sightseeing", "Fishing"},
			Packages: listing.TourPackages{
				{ID: "kp1", Name: "Manthoka & Mehdiabad Day Trip", Price: 80, Duration: "1 Day", Features: []string{"Transport", "Lunch", "Guide"}},
			},
			Status:  listing.StatusApproved,
			OwnerID: placeholderOwner,
		},
	}

	var existingIDs []string
	if err := db.Model(&listing.Listing{}).Pluck("id", &existingIDs).Error; err != nil {
		log.Printf("❌ Failed to fetch existing listing ids: %v", err)
		return
	}

	existingIDMap := make(map[string]bool)
	for _, id := range existingIDs {
		existingIDMap[id] = true
	}

	var missing []listing.Listing
	for _, l := range listings {
		if !existingIDMap[l.ID] {
			missing = append(missing, l)
		}
	}

	log.Printf("📊 Data integrity check:")
	log.Printf("   Expected seed listings: %d", len(listings))
	log.Printf("   Missing seed listings: %d", len(missing))

	if len(missing) == 0 {
		log.Printf("✅ All seed listings are already present. No seeding needed.")
		return
	}

	if err := db.Create(&missing).Error; err != nil {
		log.Printf("❌ Failed to seed listings: %v", err)
		return
	}

	log.Printf("✅ Seeded %d missing listings.", len(missing))
}
