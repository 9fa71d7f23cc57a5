package lexicon

// defaultFile returns the built-in reference data. The term lists were
// compiled from several years of Odisha forest-department quarterly reports;
// plural and spelling variants are listed explicitly because matching is
// literal, not stemmed.
func defaultFile() File {
	return File{
		Animals: []string{
			// Elephants & related
			"elephant", "elephants", "tusker", "tuskers",
			// Big cats & carnivores
			"tiger", "tigers", "leopard", "leopards", "panther",
			// Rhino & relatives
			"rhino", "rhinoceros", "rhinos",
			// Pangolin
			"pangolin", "pangolins", "scaly anteater",
			// Bears
			"bear", "bears", "sloth bear", "sun bear", "polar bear",
			// Deer & cervids
			"deer", "deers", "sambar", "chital", "spotted deer", "muntjac", "axis deer",
			// Otter
			"otter", "otters",
			// Primates
			"primate", "primates", "monkey", "monkeys", "macaque", "gibbon", "langur",
			// Seals / walrus
			"seal", "seals", "walrus", "walruses", "narwhal",
			// Cetaceans
			"whale", "whales", "dolphin", "porpoise",
			// Crocodilians
			"crocodile", "alligator",
			// Snakes
			"snake", "snakes", "cobra", "cobras", "python", "pythons", "viper", "vipers",
			// Turtles
			"turtle", "turtles", "tortoise", "tortoises", "sea turtle", "sea turtles",
			// Sharks & rays
			"shark", "sharks", "manta ray", "manta rays", "ray", "rays", "skate", "skates",
			// Seahorse & sea cucumber
			"seahorse", "sea cucumber", "sea cucumbers",
			// Invertebrates
			"scorpion", "scorpions", "butterfly", "butterflies", "beetle", "beetles",
			// Live/status mentions seen in seizure reports
			"live animal", "hatchling", "hatchlings",
			// Remains
			"carcasses", "dead animal",
		},
		Birds: []string{
			"eagle", "eagles", "hawk", "hawks", "vulture", "vultures", "osprey",
			"parrot", "parrots", "cockatoo", "cockatoos", "macaw", "macaws",
			"peacock", "peafowl",
			"hornbill", "hornbills",
			"myna", "mynas", "hill myna", "hill mynas",
			"migratory bird", "migratory birds", "waterfowl", "duck", "ducks", "goose", "geese",
			"live bird", "bird eggs",
		},
		Products: []string{
			"tusk", "tusks", "ivory", "elephant tusk", "elephant tusks",
			"horn", "horns", "rhino horn", "rhino horns",
			"antler", "antlers",
			"skin", "skins", "pelt", "pelts", "fur", "furs", "hide", "hides", "leather",
			"meat", "bushmeat",
			"bone", "bones", "skeleton", "skull", "teeth", "tooth", "molar", "claw", "claws",
			"feather", "feathers",
			"scale", "scales", "pangolin scales",
			"shell", "shells", "turtle shell", "tortoise shell",
			"gill raker", "gill rakers", "baleen", "whale bone",
			"bile", "gallbladder", "organs", "liver",
			"skin fragment", "preserved skin",
			"trophy", "taxidermy", "mounted head",
			"shark fin", "shark fins",
			"beche-de-mer",
			"coral", "live coral",
			"live specimen", "live reptile",
			"handicraft", "ornament", "jewelry", "carved ivory",
		},
		ContextSignals: []string{
			"seizure", "seized", "confiscated", "confiscation", "arrested", "arrest",
			"smuggled", "smuggling", "trafficked", "trafficking", "poached", "poaching",
			"killed", "die", "died", "dead", "death", "carcass", "remains", "found", "discovered",
			"carrying", "possession", "trading", "selling", "bought", "market",
		},
		Canonical: map[string]string{
			"tusker":         "Asian Elephant",
			"tuskers":        "Asian Elephant",
			"elephant":       "Asian Elephant",
			"elephants":      "Asian Elephant",
			"tiger":          "Royal Bengal Tiger",
			"tigers":         "Royal Bengal Tiger",
			"leopard":        "Leopard",
			"leopards":       "Leopard",
			"panther":        "Leopard",
			"rhino":          "Rhinoceros",
			"rhinoceros":     "Rhinoceros",
			"pangolin":       "Pangolin",
			"pangolins":      "Pangolin",
			"scaly anteater": "Pangolin",
			"bear":           "Bear",
			"sloth bear":     "Sloth Bear",
			"deer":           "Deer",
			"spotted deer":   "Spotted Deer",
			"barking deer":   "Barking Deer",
			"sambar":         "Sambar Deer",
			"snake":          "Snake",
			"cobra":          "Cobra",
			"python":         "Python",
			"turtle":         "Turtle",
			"tortoise":       "Tortoise",
			"skin":           "Animal Skin",
			"skins":          "Animal Skin",
			"hide":           "Animal Skin",
			"ivory":          "Ivory",
			"tusk":           "Ivory",
			"tusks":          "Ivory",
		},
		SpeciesWhitelist: []string{
			"tiger", "tigers", "leopard", "leopards", "panther", "panthers",
			"elephant", "elephants", "rhino", "rhinos", "rhinoceros",
			"pangolin", "pangolins", "turtle", "turtles", "tortoise", "tortoises",
			"snake", "snakes", "lizard", "lizards", "frog", "frogs",
			"bird", "birds", "parrot", "parrots", "eagle", "eagles",
			"owl", "owls", "monkey", "monkeys", "ape", "apes",
			"bear", "bears", "deer", "wolf", "wolves", "lion", "lions",
			"cheetah", "cheetahs", "jaguar", "jaguars", "crocodile", "crocodiles",
			"alligator", "alligators", "shark", "sharks", "whale", "whales",
			"dolphin", "dolphins", "seal", "seals", "otter", "otters",
		},
		ProductIndicators: []string{
			"skin", "skins", "hide", "hides", "scale", "scales", "scaly",
			"horn", "horns", "tusk", "tusks", "tooth", "teeth", "fang", "fangs",
			"bone", "bones", "meat", "fur", "pelt", "pelts", "leather",
			"ivory", "claw", "claws", "tail", "tails", "feather", "feathers",
			"egg", "eggs", "shell", "shells", "bile", "gallbladder",
			"organ", "organs", "blood", "fat", "oil",
		},
		Districts: []string{
			"Angul", "Balangir", "Balasore", "Bargarh", "Bhadrak", "Boudh",
			"Cuttack", "Deogarh", "Dhenkanal", "Gajapati", "Ganjam",
			"Jagatsinghpur", "Jajpur", "Jharsuguda", "Kalahandi", "Kandhamal",
			"Kendrapara", "Kendujhar", "Khordha", "Koraput", "Malkangiri",
			"Mayurbhanj", "Nabarangpur", "Nayagarh", "Nuapada", "Puri",
			"Rayagada", "Sambalpur", "Subarnapur", "Sundargarh",
		},
		DistrictAliases: map[string]string{
			"baleswar":     "Balasore",
			"keonjhar":     "Kendujhar",
			"sonepur":      "Subarnapur",
			"bhubaneswar":  "Khordha",     // Capital city, Khordha district
			"baripada":     "Mayurbhanj",  // HQ of Mayurbhanj
			"rourkela":     "Sundargarh",  // City in Sundargarh
			"berhampur":    "Ganjam",      // City in Ganjam
			"brahmapur":    "Ganjam",
			"similipal":    "Mayurbhanj",  // National park, mostly in Mayurbhanj
			"bhitarkanika": "Kendrapara",
			"chilika":      "Khordha",     // Spans several districts; Khordha by convention
			"satkosia":     "Angul",
			"hirakud":      "Sambalpur",   // Dam in Sambalpur
			"nabrangpur":   "Nabarangpur", // Spelling variant
			"raigada":      "Rayagada",    // Spelling variant
			"dhenkjanal":   "Dhenkanal",   // Typo seen in source reports
		},
	}
}
