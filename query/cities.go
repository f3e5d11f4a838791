package query

// City maps a canonical city name to the alias and locality keywords
// that identify it in query text and address fields.
type City struct {
	Name     string
	Keywords []string
}

// Cities is the known-city table, checked in order. The first city with
// any keyword appearing in the query wins, and its whole keyword set is
// recorded so address matching can hit localities the query never
// mentioned.
var Cities = []City{
	{Name: "pune", Keywords: []string{"pune", "pimpri", "chinchwad", "wakad", "hinjewadi", "mamurdi"}},
	{Name: "mumbai", Keywords: []string{"mumbai", "bombay", "andheri", "bandra", "chembur", "thane", "navi mumbai"}},
	{Name: "bangalore", Keywords: []string{"bangalore", "bengaluru", "whitefield", "electronic city"}},
	{Name: "delhi", Keywords: []string{"delhi", "new delhi", "gurgaon", "noida", "dwarka"}},
	{Name: "hyderabad", Keywords: []string{"hyderabad", "secunderabad", "gachibowli", "hitech city"}},
	{Name: "chennai", Keywords: []string{"chennai", "madras", "tambaram"}},
	{Name: "kolkata", Keywords: []string{"kolkata", "calcutta", "salt lake"}},
}

// CityByName returns the table entry for a canonical city name.
func CityByName(name string) (City, bool) {
	for _, c := range Cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}
