package knowledge

import "campus-chat/domain"

// Static knowledge tables, curated by hand like the transport office
// spreadsheets they come from. Pickup times keep the "H.MM" notation.

func profile() domain.InstitutionProfile {
	return domain.InstitutionProfile{
		Name:          "Takshashila University",
		Established:   "2023",
		Location:      "Near Tindivanam, Villupuram District, Tamil Nadu, India",
		Address:       "Chennai–Trichy National Highway (NH-45), Near Tindivanam, Villupuram District, Tamil Nadu – 604 305",
		Website:       "https://www.takshashilauniv.edu.in",
		Type:          "Private University",
		RecognizedBy:  "UGC (University Grants Commission), Government of Tamil Nadu",
		PromotingBody: "Sri Manakula Vinayagar Group of Educational Institutions",
		Motto:         "Transforming Education for Tomorrow",
		Vision:        "To become a globally recognized university known for innovation, multidisciplinary education, and research-driven learning that contributes to national development",
		Mission: []string{
			"Provide world-class education integrating technology, ethics, and research",
			"Empower students through skill-based and industry-oriented programs",
			"Encourage innovation, entrepreneurship, and social responsibility",
		},
		Schools: []string{
			"School of Engineering and Technology (B.Tech in CSE, AI & DS, ECE, Mechanical, Civil, etc.)",
			"School of Computing Sciences (BCA, MCA, B.Sc., M.Sc. in Data Science, Cybersecurity, etc.)",
			"School of Commerce and Management (BBA, MBA, B.Com, M.Com, etc.)",
			"School of Arts and Humanities",
			"School of Agricultural Sciences",
			"School of Physiotherapy",
			"School of Paramedical Sciences",
			"School of Pharmacy",
			"School of Law",
			"School of Architecture",
			"School of Allied Health Sciences",
		},
		Facilities: []string{
			"Smart classrooms",
			"AI and IoT laboratories",
			"Central library and digital learning center",
			"Hostel accommodation (separate for boys and girls)",
			"Transportation facilities",
			"Indoor/outdoor sports complexes",
			"Wi-Fi campus and innovation hubs",
		},
		Research: []string{
			"Innovation & Incubation Centers for start-ups",
			"Industry-Academia Partnerships (especially in AI, Data Science, Biotechnology, and Management)",
			"Skill development programs in collaboration with corporate sectors",
			"Hackathons and research conclaves for students",
		},
		Accreditation: "Established under Tamil Nadu Act No. 19 of 2023. Recognized by UGC. Programs follow AICTE, PCI, BCI, and INC guidelines where applicable",
		Symbolism:     "The name 'Takshashila' pays homage to the ancient world's first learning hub — the original Takshashila in Gandhara. It represents the institution's commitment to revive India's ancient educational excellence using modern technology and research",
	}
}

// clubMeetingTime is shared by every club in the directory.
const clubMeetingTime = "Every Wednesday and Friday, 3.30 PM to 5.00 PM"

func clubs() []domain.Club {
	return []domain.Club{
		{Name: "Coding Club", Rooms: []string{"A-204", "A-205"}},
		{Name: "Robotics Club", Rooms: []string{"B-112"}},
		{Name: "Literary Club", Rooms: []string{"C-301"}},
		{Name: "Music Club", Rooms: []string{"D-105"}},
		{Name: "Eco Club", Rooms: []string{"A-010"}},
		{Name: "Sports Club", Rooms: []string{"Indoor Sports Complex"}},
	}
}

// clubAliases maps loose phrasings to a directory name. Lab phrases
// resolve to the club that runs the room.
func clubAliases() map[string]string {
	return map[string]string{
		"coding":      "Coding Club",
		"programming": "Coding Club",
		"ai lab":      "Coding Club",
		"robotics":    "Robotics Club",
		"robot":       "Robotics Club",
		"iot lab":     "Robotics Club",
		"literary":    "Literary Club",
		"book":        "Literary Club",
		"debate":      "Literary Club",
		"music":       "Music Club",
		"band":        "Music Club",
		"eco":         "Eco Club",
		"environment": "Eco Club",
		"green":       "Eco Club",
		"sports club": "Sports Club",
		"athletics":   "Sports Club",
	}
}

func routes() []domain.Route {
	return []domain.Route{
		{
			Number:          1,
			Name:            "Chennai Corridor",
			DriverName:      "Murugan",
			DriverContact:   "+91 98400 11223",
			InchargeName:    "Prakash",
			InchargeContact: "+91 98400 33445",
			Stops: []domain.Stop{
				{Label: "Guindy", Pickup: "6.10"},
				{Label: "Tambaram", Pickup: "6.35"},
				{Label: "Chengalpattu", Pickup: "7.05"},
				{Label: "Madurantakam", Pickup: "7.40"},
				{Label: "Tindivanam Bus Stand", Pickup: "8.15"},
				{Label: "University Campus", Pickup: "8.40"},
			},
		},
		{
			Number:          2,
			Name:            "Puducherry Line",
			DriverName:      "Selvam",
			DriverContact:   "+91 94430 55667",
			InchargeName:    "Devi",
			InchargeContact: "+91 94430 77889",
			Stops: []domain.Stop{
				{Label: "Puducherry New Bus Stand", Pickup: "7.00"},
				{Label: "Villianur", Pickup: "7.15"},
				{Label: "Valavanur", Pickup: "7.35"},
				{Label: "Tindivanam Bus Stand", Pickup: "8.05"},
				{Label: "University Campus", Pickup: "8.35"},
			},
		},
		{
			Number:          3,
			Name:            "Villupuram Shuttle",
			DriverName:      "Kannan",
			DriverContact:   "+91 98940 12321",
			InchargeName:    "Revathi",
			InchargeContact: "+91 98940 45654",
			Stops: []domain.Stop{
				{Label: "Villupuram New Bus Stand", Pickup: "7.10"},
				{Label: "Koliyanur", Pickup: "7.20"},
				{Label: "Vikravandi", Pickup: "7.35"},
				{Label: "Mundiyampakkam", Pickup: "7.50"},
				{Label: "University Campus", Pickup: "8.30"},
			},
		},
		{
			Number:          4,
			Name:            "Cuddalore Line",
			DriverName:      "Rajesh",
			DriverContact:   "+91 97510 98765",
			InchargeName:    "Anand",
			InchargeContact: "+91 97510 54321",
			Stops: []domain.Stop{
				{Label: "Cuddalore Old Town", Pickup: "6.50"},
				{Label: "Panruti", Pickup: "7.20"},
				{Label: "Tindivanam Bus Stand", Pickup: "8.10"},
				{Label: "University Campus", Pickup: "8.40"},
			},
		},
	}
}

// routeAliases maps a corridor keyword to a route number, checked before
// the fuzzy stop scan. Pondicherry is the common spoken form.
func routeAliases() map[string]int {
	return map[string]int{
		"chennai corridor":   1,
		"puducherry line":    2,
		"pondicherry":        2,
		"villupuram shuttle": 3,
		"cuddalore":          4,
	}
}
