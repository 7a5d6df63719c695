package seeders

import (
	"log"

	"agevee-booking/models/district"

	"gorm.io/gorm"
)

func SeedDistricts(db *gorm.DB) {
	log.Printf("🔍 Checking district data integrity...")

	districts := []district.District{
		{
			ID:          "d1",
			Name:        "Skardu",
			Description: "The gateway to K2 and home to mesmerizing lakes like Shangrila and Sheosar.",
			Image:       "https://lh3.googleusercontent.com/d/1aFBu2T-MzmIdbF2BrlCoCg5ffInQXe6S",
			Attractions: district.StringSlice{"Shangrila Resort", "Deosai Plains", "Kachura Lakes"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/c/c8/Shangrila_Resort_Skardu.jpg/1024px-Shangrila_Resort_Skardu.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d1/Satpara_Lake_Skardu.jpg/1024px-Satpara_Lake_Skardu.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9d/Deosai_Plains_Skardu.jpg/1024px-Deosai_Plains_Skardu.jpg"},
			Lat:         35.2971,
			Lng:         75.6333,
		},
		{
			ID:          "d2",
			Name:        "Hunza",
			Description: "Known for its longevity, culture, and the majestic Rakaposhi peak.",
			Image:       "https://lh3.googleusercontent.com/d/1xzYmJL9tK031Xs5q5kZ8uennnPFPAaSq",
			Attractions: district.StringSlice{"Karimabad", "Attabad Lake", "Baltit Fort"},
			Gallery:     district.StringSlice{"https://lh3.googleusercontent.com/d/1ELvCe1hqaNrpVjrI5B0k0YH5cTsmWz8g", "https://upload.wikimedia.org/wikipedia/commons/thumb/5/53/Passu_Cones_Hunza.jpg/1024px-Passu_Cones_Hunza.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6c/Baltit_Fort_Karimabad_Hunza.jpg/1024px-Baltit_Fort_Karimabad_Hunza.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f6/Attabad_Lake_Hunza.jpg/1024px-Attabad_Lake_Hunza.jpg"},
			Lat:         36.3167,
			Lng:         74.65,
		},
		{
			ID:          "d3",
			Name:        "Gilgit",
			Description: "The capital city, a historic trading hub on the Silk Route.",
			Image:       "https://lh3.googleusercontent.com/d/1zUUbZwhDpCv3P8NCyjbTDc78wet4UXK9",
			Attractions: district.StringSlice{"Naltar Valley", "Gilgit River", "Danyore Suspension Bridge"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/0/07/Naltar_Lake_Gilgit.jpg/1024px-Naltar_Lake_Gilgit.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/8/86/Kargah_Buddha_Gilgit.jpg/1024px-Kargah_Buddha_Gilgit.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a2/Danyore_Suspension_Bridge_Gilgit.jpg/1024px-Danyore_Suspension_Bridge_Gilgit.jpg"},
			Lat:         35.9208,
			Lng:         74.3089,
		},
		{
			ID:          "d4",
			Name:        "Astore",
			Description: "Famous for its diverse landscape and the beautiful Rama Meadows.",
			Image:       "https://lh3.googleusercontent.com/d/1nUkZGtuibiayJlT5rkE__6DERYpOezSa",
			Attractions: district.StringSlice{"Rama Lake", "Minimarg", "Deosai access"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/3/36/Rama_Meadows_Astore.jpg/1024px-Rama_Meadows_Astore.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e8/Minimarg_Astore.jpg/1024px-Minimarg_Astore.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1a/Chilim_Astore.jpg/1024px-Chilim_Astore.jpg"},
			Lat:         35.3667,
			Lng:         74.9,
		},
		{
			ID:          "d5",
			Name:        "Ghizer",
			Description: "Land of lakes and trout fishing, offering serenity and peace.",
			Image:       "https://lh3.googleusercontent.com/d/1eZxT3chHmhb1cQkoM0UsK1mqrCocW26G",
			Attractions: district.StringSlice{"Phander Lake", "Khalti Lake", "Shandur Pass"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/4/47/Khalti_Lake_Ghizer.jpg/1024px-Khalti_Lake_Ghizer.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/22/Shandur_Pass.jpg/1024px-Shandur_Pass.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f3/Yasin_Valley_Ghizer.jpg/1024px-Yasin_Valley_Ghizer.jpg"},
			Lat:         36.1736,
			Lng:         73.6653,
		},
		{
			ID:          "d6",
			Name:        "Nagar",
			Description: "Home to the Golden Peak (Spantik) and Hopper Glacier.",
			Image:       "https://lh3.googleusercontent.com/d/1c_HLe_GmKC_Ebc30dcCv4Pj1lBcgmwk_",
			Attractions: district.StringSlice{"Hopper Glacier", "Rakaposhi View Point", "Hispar"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/3/3e/Rakaposhi_View_Point_Nagar.jpg/1024px-Rakaposhi_View_Point_Nagar.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b8/Rush_Lake_Nagar.jpg/1024px-Rush_Lake_Nagar.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c1/Golden_Peak_Nagar.jpg/1024px-Golden_Peak_Nagar.jpg"},
			Lat:         36.1333,
			Lng:         74.8333,
		},
		{
			ID:          "d7",
			Name:        "Khaplu",
			Description: "The district of soaring peaks, home to Khaplu Palace and the hidden jewel, Kharfaq Lake.",
			Image:       "https://lh3.googleusercontent.com/d/1AgDrqlbMxqW9M2DEJi9r6FaWEK6ZUxtl",
			Attractions: district.StringSlice{"Kharfaq Lake", "Khaplu Palace", "Chaqchan Mosque", "Hushe Valley"},
			Gallery:     district.StringSlice{"https://lh3.googleusercontent.com/d/1yzfoxVxyBPp55tGuZnYAJ3zIQztTXt2_", "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a6/Chaqchan_Mosque_Ghanche.jpg/1024px-Chaqchan_Mosque_Ghanche.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/9/91/Hushe_Valley_Ghanche.jpg/1024px-Hushe_Valley_Ghanche.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/3/31/Masherbrum_Peak.jpg/1024px-Masherbrum_Peak.jpg"},
			Lat:         35.1565,
			Lng:         76.3365,
		},
		{
			ID:          "d8",
			Name:        "Kharmang",
			Description: "The home of the famous Manthoka Waterfall and lush green valleys.",
			Image:       "https://lh3.googleusercontent.com/d/1kEhZTy1yPsUsRoT39YLEaxMqfFXwAfZg",
			Attractions: district.StringSlice{"Mantokha Waterfall", "Kharmang Valley", "Mehdiabad"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/a/a9/Manthokha_Waterfall_Kharmang.jpg/1200px-Manthokha_Waterfall_Kharmang.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/7/70/Indus_River_Kharmang.jpg/1024px-Indus_River_Kharmang.jpg"},
			Lat:         34.9333,
			Lng:         76.2167,
		},
		{
			ID:          "d9",
			Name:        "Diamer",
			Description: "The entrance to Gilgit-Baltistan via KKH, home to Nanga Parbat.",
			Image:       "https://lh3.googleusercontent.com/d/1okOUjNdYuWB6bnzYg7yHDWJIvzHIl0e0",
			Attractions: district.StringSlice{"Fairy Meadows", "Nanga Parbat Base Camp", "Chilas Rock Carvings"},
			Gallery:     district.StringSlice{"https://upload.wikimedia.org/wikipedia/commons/thumb/8/87/Fairy_Meadows_Diamer.jpg/1024px-Fairy_Meadows_Diamer.jpg", "https://upload.wikimedia.org/wikipedia/commons/thumb/e/eb/Chilas_Rock_Carvings.jpg/1024px-Chilas_Rock_Carvings.jpg"},
			Lat:         35.4167,
			Lng:         74.1,
		},
	}

	// Get all existing district ids from database
	var existingIDs []string
	if err := db.Model(&district.District{}).Pluck("id", &existingIDs).Error; err != nil {
		log.Printf("❌ Failed to fetch existing district ids: %v", err)
		return
	}

	existingIDMap := make(map[string]bool)
	for _, id := range existingIDs {
		existingIDMap[id] = true
	}

	var missing []district.District
	for _, d := range districts {
		if !existingIDMap[d.ID] {
			missing = append(missing, d)
		}
	}

	log.Printf("📊 Data integrity check:")
	log.Printf("   Expected districts: %d", len(districts))
	log.Printf("   Existing districts: %d", len(existingIDs))
	log.Printf("   Missing districts: %d", len(missing))

	if len(missing) == 0 {
		log.Printf("✅ All districts are already present. No seeding needed.")
		return
	}

	if err := db.Create(&missing).Error; err != nil {
		log.Printf("❌ Failed to seed districts: %v", err)
		return
	}

	log.Printf("✅ Seeded %d missing districts.", len(missing))
}
