package assistant

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

type ItineraryRequest struct {
	Destination string   `json:"destination" validate:"max=255"`
	Days        int      `json:"days" validate:"required,gte=1,lte=30"`
	Budget      string   `json:"budget" validate:"required,max=64"`
	Interests   []string `json:"interests" validate:"max=20"`
}

// PlaceInfo is one recommended place inside a district guide.
type PlaceInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DistrictGuide is the structured travel guide the assistant produces
// for a single district.
type DistrictGuide struct {
	Overview         string      `json:"overview"`
	NaturalPlaces    []PlaceInfo `json:"naturalPlaces"`
	HistoricalPlaces []PlaceInfo `json:"historicalPlaces"`
	Hotels           []PlaceInfo `json:"hotels"`
}

type Weather struct {
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
}

type RoadStatus struct {
	Status  string `json:"status"` // OPEN, CLOSED or CAUTION
	Details string `json:"details"`
}

type DistrictLiveStatus struct {
	Name       string     `json:"name"`
	Weather    Weather    `json:"weather"`
	RoadStatus RoadStatus `json:"roadStatus"`
	Advisory   string     `json:"advisory"`
}

// LiveStatus is display-only advisory data; it is never persisted and is
// explicitly distinct from the authoritative store.
type LiveStatus struct {
	LastUpdated   string               `json:"lastUpdated"`
	GeneralAlerts []string             `json:"generalAlerts"`
	Districts     []DistrictLiveStatus `json:"districts"`
}

// LiveUpdatesResponse pairs the advisory data with the source URLs the
// model grounded it on.
type LiveUpdatesResponse struct {
	Data    *LiveStatus `json:"data"`
	Sources []string    `json:"sources"`
}
