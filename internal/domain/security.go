package domain

// Security identifies one instrument in the fixture universe.
type Security struct {
	CUSIP string
	Tenor string
}

// Universe returns the fixed seven-instrument U.S. Treasury universe, in
// the order every stream emits records. Callers get a fresh slice each
// call and may not assume shared backing storage.
func Universe() []Security {
	return []Security{
		{CUSIP: "91282CAX9", Tenor: "2Y"},
		{CUSIP: "91282CBA80", Tenor: "3Y"},
		{CUSIP: "91282CAZ4", Tenor: "5Y"},
		{CUSIP: "91282CAY7", Tenor: "7Y"},
		{CUSIP: "91282CAV3", Tenor: "10Y"},
		{CUSIP: "912810ST6", Tenor: "20Y"},
		{CUSIP: "912810SS8", Tenor: "30Y"},
	}
}
