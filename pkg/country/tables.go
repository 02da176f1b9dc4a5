package country

// Entry pairs a display name with a canonical IANA zone identifier.
type Entry struct {
	Name string
	Zone string
}

// Tables is the resolver's immutable lookup configuration. Construct it once
// and pass it in; nothing mutates it after that.
type Tables struct {
	// Composite maps region codes for countries spanning several zones,
	// e.g. USA-E for the US eastern zone.
	Composite map[string]Entry
	// Countries maps ISO alpha-3 codes to each country's primary zone.
	// Countries covered by composite codes deliberately have no bare entry.
	Countries map[string]Entry
}

// DefaultTables returns the built-in lookup tables.
func DefaultTables() Tables {
	return Tables{Composite: compositeRegions, Countries: countryZones}
}

var compositeRegions = map[string]Entry{
	"USA-E": {"United States (Eastern)", "America/New_York"},
	"USA-C": {"United States (Central)", "America/Chicago"},
	"USA-M": {"United States (Mountain)", "America/Denver"},
	"USA-P": {"United States (Pacific)", "America/Los_Angeles"},
	"RUS-W": {"Russia (Western)", "Europe/Moscow"},
	"RUS-C": {"Russia (Central)", "Asia/Yekaterinburg"},
	"RUS-E": {"Russia (Eastern)", "Asia/Vladivostok"},
	"CAN-E": {"Canada (Eastern)", "America/Toronto"},
	"CAN-C": {"Canada (Central)", "America/Winnipeg"},
	"CAN-M": {"Canada (Mountain)", "America/Edmonton"},
	"CAN-P": {"Canada (Pacific)", "America/Vancouver"},
	"BRA-E": {"Brazil (Eastern)", "America/Sao_Paulo"},
	"BRA-C": {"Brazil (Central)", "America/Manaus"},
	"CHN-E": {"China (Eastern)", "Asia/Shanghai"},
	"CHN-W": {"China (Western)", "Asia/Urumqi"},
	"AUS-E": {"Australia (Eastern)", "Australia/Sydney"},
	"AUS-C": {"Australia (Central)", "Australia/Adelaide"},
	"AUS-W": {"Australia (Western)", "Australia/Perth"},
}

var countryZones = map[string]Entry{
	"AFG": {"Afghanistan", "Asia/Kabul"},
	"ARE": {"United Arab Emirates", "Asia/Dubai"},
	"ARG": {"Argentina", "America/Argentina/Buenos_Aires"},
	"AUT": {"Austria", "Europe/Vienna"},
	"BEL": {"Belgium", "Europe/Brussels"},
	"BGD": {"Bangladesh", "Asia/Dhaka"},
	"BGR": {"Bulgaria", "Europe/Sofia"},
	"BOL": {"Bolivia", "America/La_Paz"},
	"CHE": {"Switzerland", "Europe/Zurich"},
	"CHL": {"Chile", "America/Santiago"},
	"COL": {"Colombia", "America/Bogota"},
	"CRI": {"Costa Rica", "America/Costa_Rica"},
	"CUB": {"Cuba", "America/Havana"},
	"CZE": {"Czechia", "Europe/Prague"},
	"DEU": {"Germany", "Europe/Berlin"},
	"DNK": {"Denmark", "Europe/Copenhagen"},
	"DOM": {"Dominican Republic", "America/Santo_Domingo"},
	"DZA": {"Algeria", "Africa/Algiers"},
	"ECU": {"Ecuador", "America/Guayaquil"},
	"EGY": {"Egypt", "Africa/Cairo"},
	"ESP": {"Spain", "Europe/Madrid"},
	"EST": {"Estonia", "Europe/Tallinn"},
	"ETH": {"Ethiopia", "Africa/Addis_Ababa"},
	"FIN": {"Finland", "Europe/Helsinki"},
	"FJI": {"Fiji", "Pacific/Fiji"},
	"FRA": {"France", "Europe/Paris"},
	"GBR": {"United Kingdom", "Europe/London"},
	"GHA": {"Ghana", "Africa/Accra"},
	"GRC": {"Greece", "Europe/Athens"},
	"GTM": {"Guatemala", "America/Guatemala"},
	"HKG": {"Hong Kong", "Asia/Hong_Kong"},
	"HUN": {"Hungary", "Europe/Budapest"},
	"IDN": {"Indonesia", "Asia/Jakarta"},
	"IND": {"India", "Asia/Kolkata"},
	"IRL": {"Ireland", "Europe/Dublin"},
	"IRN": {"Iran", "Asia/Tehran"},
	"IRQ": {"Iraq", "Asia/Baghdad"},
	"ISL": {"Iceland", "Atlantic/Reykjavik"},
	"ISR": {"Israel", "Asia/Jerusalem"},
	"ITA": {"Italy", "Europe/Rome"},
	"JAM": {"Jamaica", "America/Jamaica"},
	"JOR": {"Jordan", "Asia/Amman"},
	"JPN": {"Japan", "Asia/Tokyo"},
	"KAZ": {"Kazakhstan", "Asia/Almaty"},
	"KEN": {"Kenya", "Africa/Nairobi"},
	"KHM": {"Cambodia", "Asia/Phnom_Penh"},
	"KOR": {"South Korea", "Asia/Seoul"},
	"LBN": {"Lebanon", "Asia/Beirut"},
	"LKA": {"Sri Lanka", "Asia/Colombo"},
	"LTU": {"Lithuania", "Europe/Vilnius"},
	"LVA": {"Latvia", "Europe/Riga"},
	"MAR": {"Morocco", "Africa/Casablanca"},
	"MEX": {"Mexico", "America/Mexico_City"},
	"MMR": {"Myanmar", "Asia/Yangon"},
	"MNG": {"Mongolia", "Asia/Ulaanbaatar"},
	"MYS": {"Malaysia", "Asia/Kuala_Lumpur"},
	"NGA": {"Nigeria", "Africa/Lagos"},
	"NLD": {"Netherlands", "Europe/Amsterdam"},
	"NOR": {"Norway", "Europe/Oslo"},
	"NPL": {"Nepal", "Asia/Kathmandu"},
	"NZL": {"New Zealand", "Pacific/Auckland"},
	"PAK": {"Pakistan", "Asia/Karachi"},
	"PAN": {"Panama", "America/Panama"},
	"PER": {"Peru", "America/Lima"},
	"PHL": {"Philippines", "Asia/Manila"},
	"POL": {"Poland", "Europe/Warsaw"},
	"PRT": {"Portugal", "Europe/Lisbon"},
	"PRY": {"Paraguay", "America/Asuncion"},
	"QAT": {"Qatar", "Asia/Qatar"},
	"ROU": {"Romania", "Europe/Bucharest"},
	"SAU": {"Saudi Arabia", "Asia/Riyadh"},
	"SGP": {"Singapore", "Asia/Singapore"},
	"SVK": {"Slovakia", "Europe/Bratislava"},
	"SWE": {"Sweden", "Europe/Stockholm"},
	"THA": {"Thailand", "Asia/Bangkok"},
	"TUN": {"Tunisia", "Africa/Tunis"},
	"TUR": {"Turkey", "Europe/Istanbul"},
	"TWN": {"Taiwan", "Asia/Taipei"},
	"UKR": {"Ukraine", "Europe/Kyiv"},
	"URY": {"Uruguay", "America/Montevideo"},
	"UZB": {"Uzbekistan", "Asia/Tashkent"},
	"VEN": {"Venezuela", "America/Caracas"},
	"VNM": {"Vietnam", "Asia/Ho_Chi_Minh"},
	"ZAF": {"South Africa", "Africa/Johannesburg"},
}
