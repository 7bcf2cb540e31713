package site

// PrimaryKeywords seed every generated keyword list.
var PrimaryKeywords = []string{
	"moradabad news",
	"moradabad",
	"uttar pradesh news",
	"up news",
	"hindi news",
	"india news",
	"breaking news",
}

// LocalKeywords close every generated keyword list, after content-derived
// entries.
var LocalKeywords = []string{
	"moradabad city",
	"brass city",
	"western up",
	"local news moradabad",
}

// CategoryKeywords maps a category slug to its topical keywords. Unknown
// categories simply contribute nothing.
var CategoryKeywords = map[string][]string{
	"moradabad": {"moradabad local news", "moradabad today", "moradabad city news"},
	"politics":  {"up politics", "indian politics", "election news", "government"},
	"crime":     {"crime news", "moradabad crime", "police news"},
	"sports":    {"sports news", "cricket news", "india sports"},
	"business":  {"business news", "brass industry", "moradabad exports", "market news"},
	"education": {"education news", "exam results", "admission news", "up board"},
	"jobs":      {"sarkari naukri", "government jobs", "up jobs", "job alerts"},
	"health":    {"health news", "medical news", "hospital news"},
	"entertainment": {"entertainment news", "bollywood news", "celebrity news"},
	"technology":    {"tech news", "technology updates", "gadgets"},
	"current-affairs": {"current affairs", "daily current affairs", "gk updates"},
}
