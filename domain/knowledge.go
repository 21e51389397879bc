package domain

// InstitutionProfile is the static identity record of the campus.
// Loaded once at startup, immutable afterwards.
type InstitutionProfile struct {
	Name          string
	Established   string
	Location      string
	Address       string
	Website       string
	Type          string
	RecognizedBy  string
	PromotingBody string
	Motto         string
	Vision        string
	Mission       []string
	Schools       []string
	Facilities    []string
	Research      []string
	Accreditation string
	Symbolism     string
}

// Club groups students around an activity. Names are unique within the
// directory; all clubs share one global meeting-time string.
type Club struct {
	Name  string
	Rooms []string
}

// Stop is one pickup point of a shuttle route. Pickup keeps the curated
// "H.MM" source format as-is.
type Stop struct {
	Label  string
	Pickup string
}

// Route is a shuttle line. Stops are ordered by traversal sequence,
// not necessarily by increasing time. A stop label may recur across
// several routes.
type Route struct {
	Number          int
	Name            string
	DriverName      string
	DriverContact   string
	InchargeName    string
	InchargeContact string
	Stops           []Stop
}

// FirstStop returns the boarding point of the route.
func (r Route) FirstStop() Stop {
	return r.Stops[0]
}

// LastStop returns the final arrival point of the route.
func (r Route) LastStop() Stop {
	return r.Stops[len(r.Stops)-1]
}
