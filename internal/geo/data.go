package geo

// eligibleCountries maps each continent to the country codes whose
// cities may appear on a route.
var eligibleCountries = map[string][]string{
	"Europe":        {"DE", "AT", "AZ", "BE", "GB", "BA", "BG", "CZ", "DK", "EE", "FI", "FR", "GE", "HR", "NL", "IE", "ES", "SE", "CH", "IT", "ME", "XK", "LV", "LT", "LU", "HU", "MK", "MT", "MD", "NO", "PL", "PT", "RO", "RU", "RS", "SI", "GR"},
	"North America": {"US", "CA", "CU", "MX", "PA"},
	"South America": {"AR", "BR", "CO", "CL", "VE"},
	"Asia":          {"AF", "BH", "BD", "AE", "CN", "ID", "PH", "KR", "IN", "IQ", "IR", "JP", "QA", "KZ", "KG", "KW", "LB", "MV", "MY", "MN", "NP", "UZ", "PK", "SG", "LK", "SY", "SA", "TH", "TM", "OM", "JO", "VN", "TR"},
	"Africa":        {"AO", "BJ", "BF", "DZ", "DJ", "TD", "CD", "ER", "ET", "MA", "CI", "GA", "GM", "GH", "GN", "ZA", "SS", "CM", "KE", "CG", "LY", "MG", "ML", "MU", "EG", "MR", "MZ", "NE", "NG", "RW", "SN", "SL", "SO", "TZ", "TN", "UG", "ZM"},
	"Oceania":       {"AU"},
}

// countryMajorCities maps a country code to its searchable major cities.
var countryMajorCities = map[string][]string{
	// Asia
	"IN": {"Delhi", "Mumbai"},
	"AE": {"Dubai", "Abu Dhabi"},
	"SG": {"Singapore"},
	"TH": {"Bangkok", "Phuket"},
	"TR": {"Istanbul"},
	"ID": {"Jakarta", "Bali"},
	"QA": {"Doha"},
	"MY": {"Kuala Lumpur"},
	"BD": {"Dhaka"},
	"LK": {"Colombo"},
	"MV": {"Male"},
	"CN": {"Beijing", "Shanghai"},
	"JP": {"Tokyo", "Osaka"},
	"KR": {"Seoul"},
	"PH": {"Manila"},
	"VN": {"Ho Chi Minh City", "Hanoi"},
	"SA": {"Riyadh", "Jeddah"},
	"KW": {"Kuwait City"},
	"BH": {"Manama"},
	"OM": {"Muscat"},
	"LB": {"Beirut"},
	"AF": {"Kabul"},
	"KZ": {"Almaty"},
	"UZ": {"Tashkent"},
	"KG": {"Bishkek"},
	"TM": {"Ashgabat"},
	"MN": {"Ulaanbaatar"},
	"NP": {"Kathmandu"},

	// Europe
	"DE": {"Frankfurt", "Munich", "Berlin"},
	"FR": {"Paris", "Lyon"},
	"NL": {"Amsterdam"},
	"IT": {"Rome", "Milan"},
	"ES": {"Madrid", "Barcelona"},
	"GB": {"London", "Manchester"},
	"RU": {"Moscow", "Saint Petersburg"},
	"AT": {"Vienna"},
	"BE": {"Brussels"},
	"CH": {"Zurich", "Geneva"},
	"SE": {"Stockholm"},
	"NO": {"Oslo"},
	"DK": {"Copenhagen"},
	"FI": {"Helsinki"},
	"PL": {"Warsaw", "Krakow"},
	"CZ": {"Prague"},
	"HU": {"Budapest"},
	"GR": {"Athens"},
	"PT": {"Lisbon"},
	"RO": {"Bucharest"},
	"BG": {"Sofia"},
	"HR": {"Zagreb"},
	"RS": {"Belgrade"},
	"BA": {"Sarajevo"},
	"ME": {"Podgorica"},
	"SI": {"Ljubljana"},
	"MK": {"Skopje"},
	"AZ": {"Baku"},
	"GE": {"Tbilisi"},
	"MD": {"Chisinau"},
	"EE": {"Tallinn"},
	"LV": {"Riga"},
	"LT": {"Vilnius"},
	"LU": {"Luxembourg"},
	"MT": {"Valletta"},
	"IE": {"Dublin"},

	// Africa
	"EG": {"Cairo", "Alexandria"},
	"KE": {"Nairobi"},
	"ZA": {"Johannesburg", "Cape Town"},
	"MA": {"Casablanca", "Marrakech"},
	"TN": {"Tunis"},
	"DZ": {"Algiers"},
	"LY": {"Tripoli"},
	"ET": {"Addis Ababa"},
	"GH": {"Accra"},
	"NG": {"Lagos", "Abuja"},
	"SN": {"Dakar"},
	"CI": {"Abidjan"},
	"CM": {"Douala"},
	"CD": {"Kinshasa"},
	"AO": {"Luanda"},
	"UG": {"Kampala"},
	"TZ": {"Dar es Salaam"},
	"RW": {"Kigali"},
	"MU": {"Port Louis"},
	"MG": {"Antananarivo"},

	// North America
	"US": {"New York", "Los Angeles", "Chicago", "Miami", "San Francisco", "Washington DC", "Seattle", "Boston"},
	"CA": {"Toronto", "Montreal", "Vancouver"},
	"MX": {"Mexico City", "Cancun"},
	"CU": {"Havana"},
	"PA": {"Panama City"},

	// South America
	"BR": {"Sao Paulo", "Rio de Janeiro"},
	"AR": {"Buenos Aires"},
	"CO": {"Bogota", "Medellin"},
	"CL": {"Santiago"},
	"VE": {"Caracas"},

	// Oceania
	"AU": {"Melbourne", "Sydney", "Perth"},
}

// easyVisaCountries is the visa-free / visa-on-arrival / e-visa set
// used by the easy-visa eligibility filter.
var easyVisaCountries = map[string]bool{
	"IN": true, // home country
	"AE": true,
	"QA": true,
	"ID": true,
	"TH": true,
	"MY": true,
	"SG": true,
	"LK": true,
	"MV": true,
	"TR": true,
	"GE": true,
	"KE": true,
	"EG": true,
	"MU": true,
	"BR": true,
	"AR": true,
	"CU": true,
	"CO": true,
	"BA": true,
	"RS": true,
	"ME": true,
	"MK": true,
	"MD": true,
	"AU": true,
	"UZ": true,
	"ZA": true,
	"MA": true,
	"AZ": true,
	"CA": true,
	"MX": true,
}

// airportCodes maps city names to their primary IATA airport.
var airportCodes = map[string]string{
	// Asia
	"Delhi":            "DEL",
	"Mumbai":           "BOM",
	"Hyderabad":        "HYD",
	"Bangalore":        "BLR",
	"Dubai":            "DXB",
	"Abu Dhabi":        "AUH",
	"Singapore":        "SIN",
	"Bangkok":          "BKK",
	"Phuket":           "HKT",
	"Istanbul":         "IST",
	"Ankara":           "ESB",
	"Jakarta":          "CGK",
	"Bali":             "DPS",
	"Doha":             "DOH",
	"Kuala Lumpur":     "KUL",
	"Dhaka":            "DAC",
	"Colombo":          "CMB",
	"Male":             "MLE",
	"Beijing":          "PEK",
	"Shanghai":         "PVG",
	"Tokyo":            "NRT",
	"Osaka":            "KIX",
	"Seoul":            "ICN",
	"Manila":           "MNL",
	"Ho Chi Minh City": "SGN",
	"Hanoi":            "HAN",
	"Riyadh":           "RUH",
	"Jeddah":           "JED",
	"Kuwait City":      "KWI",
	"Manama":           "BAH",
	"Muscat":           "MCT",
	"Beirut":           "BEY",
	"Kabul":            "KBL",
	"Almaty":           "ALA",
	"Tashkent":         "TAS",
	"Bishkek":          "FRU",
	"Ashgabat":         "ASB",
	"Ulaanbaatar":      "ULN",
	"Kathmandu":        "KTM",

	// Europe
	"Frankfurt":        "FRA",
	"Munich":           "MUC",
	"Berlin":           "BER",
	"Paris":            "CDG",
	"Lyon":             "LYS",
	"Amsterdam":        "AMS",
	"Rome":             "FCO",
	"Milan":            "MXP",
	"Madrid":           "MAD",
	"Barcelona":        "BCN",
	"London":           "LHR",
	"Manchester":       "MAN",
	"Moscow":           "SVO",
	"Saint Petersburg": "LED",
	"Vienna":           "VIE",
	"Brussels":         "BRU",
	"Zurich":           "ZUR",
	"Geneva":           "GVA",
	"Stockholm":        "ARN",
	"Oslo":             "OSL",
	"Copenhagen":       "CPH",
	"Helsinki":         "HEL",
	"Warsaw":           "WAW",
	"Krakow":           "KRK",
	"Prague":           "PRG",
	"Budapest":         "BUD",
	"Athens":           "ATH",
	"Lisbon":           "LIS",
	"Bucharest":        "OTP",
	"Sofia":            "SOF",
	"Zagreb":           "ZAG",
	"Belgrade":         "BEG",
	"Sarajevo":         "SJJ",
	"Podgorica":        "TGD",
	"Ljubljana":        "LJU",
	"Skopje":           "SKP",
	"Baku":             "GYD",
	"Tbilisi":          "TBS",
	"Chisinau":         "KIV",
	"Tallinn":          "TLL",
	"Riga":             "RIX",
	"Vilnius":          "VNO",
	"Luxembourg":       "LUX",
	"Valletta":         "MLA",
	"Dublin":           "DUB",

	// Africa
	"Cairo":         "CAI",
	"Alexandria":    "HBE",
	"Nairobi":       "NBO",
	"Johannesburg":  "JNB",
	"Cape Town":     "CPT",
	"Casablanca":    "CMN",
	"Marrakech":     "RAK",
	"Tunis":         "TUN",
	"Algiers":       "ALG",
	"Tripoli":       "TIP",
	"Addis Ababa":   "ADD",
	"Accra":         "ACC",
	"Lagos":         "LOS",
	"Abuja":         "ABV",
	"Dakar":         "DKR",
	"Abidjan":       "ABJ",
	"Douala":        "DLA",
	"Kinshasa":      "FIH",
	"Luanda":        "LAD",
	"Kampala":       "EBB",
	"Dar es Salaam": "DAR",
	"Kigali":        "KGL",
	"Port Louis":    "MRU",
	"Antananarivo":  "TNR",

	// North America
	"New York":      "JFK",
	"Los Angeles":   "LAX",
	"Chicago":       "ORD",
	"Miami":         "MIA",
	"San Francisco": "SFO",
	"Washington DC": "DCA",
	"Seattle":       "SEA",
	"Boston":        "BOS",
	"Toronto":       "YYZ",
	"Montreal":      "YUL",
	"Vancouver":     "YVR",
	"Mexico City":   "MEX",
	"Cancun":        "CUN",
	"Havana":        "HAV",
	"Panama City":   "PTY",

	// South America
	"Sao Paulo":      "GRU",
	"Rio de Janeiro": "GIG",
	"Buenos Aires":   "EZE",
	"Bogota":         "BOG",
	"Medellin":       "MDE",
	"Santiago":       "SCL",
	"Caracas":        "CCS",

	// Oceania
	"Melbourne": "MEL",
	"Sydney":    "SYD",
	"Perth":     "PER",
}
