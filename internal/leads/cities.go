package leads

// israeliCities is the locality list offered by the landing page form.
// Membership is advisory: the server accepts any non-empty city so that
// free-typed localities are never dropped.
var israeliCities = []string{
	"תל אביב-יפו", "ירושלים", "חיפה", "ראשון לציון", "פתח תקווה", "נתניה", "באר שבע", "חולון", "רמת גן", "אשדוד",
	"הרצליה", "כפר סבא", "רחובות", "אשקלון", "בת ים", "קרית גת", "אילת", "נהריה", "טבריה", "נצרת",
	"עכו", "קרית שמונה", "דימונה", "אריאל", "מעלה אדומים", "קרית מלאכי", "לוד", "רמלה", "יבנה", "גבעתיים",
	"קרית אונו", "רעננה", "הוד השרון", "כפר יונה", "מגדל העמק", "קרית ביאליק", "קרית ים", "קרית מוצקין", "נשר", "טירת כרמל",
	"יקנעם", "עפולה", "נצרת עילית", "כרמיאל", "צפת", "מעלות-תרשיחא",
	"שפרעם", "אום אל-פחם", "טייבה", "קלנסווה", "טירה", "גדרה",
	"ערד", "מצפה רמון", "מיתר", "להבים", "עומר", "תל שבע", "רהט", "לכיש",
	"שדרות", "אופקים", "נתיבות", "שדה בוקר",
}

var cityIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(israeliCities))
	for _, c := range israeliCities {
		idx[c] = struct{}{}
	}
	return idx
}()

// Cities returns a copy of the locality list, in form display order.
func Cities() []string {
	out := make([]string, len(israeliCities))
	copy(out, israeliCities)
	return out
}

// KnownCity reports whether name is on the locality list.
func KnownCity(name string) bool {
	_, ok := cityIndex[name]
	return ok
}
