package domain

// Category is the reply family selected for one user input.
type Category string

const (
	CategoryBus          Category = "Bus"
	CategoryInstitution  Category = "Institution"
	CategoryGreeting     Category = "Greeting"
	CategoryIdentity     Category = "IdentityQuery"
	CategoryWellbeing    Category = "Wellbeing"
	CategoryCapabilities Category = "Capabilities"
	CategoryDateTime     Category = "DateTime"
	CategoryWeather      Category = "WeatherSmallTalk"
	CategoryArithmetic   Category = "Arithmetic"
	CategoryGratitude    Category = "Gratitude"
	CategoryFarewell     Category = "Farewell"
	CategoryCompliment   Category = "Compliment"
	CategoryContextual   Category = "Contextual"
)
