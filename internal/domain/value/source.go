package value

// Source names where a resolved number came from. The values are part of
// the public response (chosen_from).
type Source string

const (
	SourceAds    Source = "ads.whatsapp"
	SourceNormal Source = "whatsapp"
	SourceStatic Source = "static"
)

func (s Source) String() string {
	return string(s)
}

// Route is the outcome of the api-vs-static split of an agency allocation.
type Route string

const (
	RouteAPI    Route = "api"
	RouteStatic Route = "static"
)

// SelectionPolicy decides which lists of the upstream payload are eligible.
type SelectionPolicy string

const (
	// PolicyAdsOnly only ever serves ads numbers.
	PolicyAdsOnly SelectionPolicy = "ads-only"
	// PolicyAdsFirst serves ads numbers and falls back to normal ones.
	PolicyAdsFirst SelectionPolicy = "ads-first"
)

func PolicyFromOnlyAds(onlyAds bool) SelectionPolicy {
	if onlyAds {
		return PolicyAdsOnly
	}

	return PolicyAdsFirst
}

func (p SelectionPolicy) OnlyAds() bool {
	return p == PolicyAdsOnly
}
