// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Phone is the success body for a freshly resolved number.
type Phone struct {
	Number       string               `json:"number"`
	Mode         string               `json:"mode"`
	UpstreamKey  string               `json:"upstream_key"`
	UpstreamBase string               `json:"upstream_base"`
	AgencyID     int64                `json:"agency_id"`
	AgencyName   string               `json:"agency_name"`
	ChosenFrom   string               `json:"chosen_from"`
	OnlyAds      *bool                `json:"only_ads,omitempty"`
	Allocation   *Allocation          `json:"allocation"`
	Region       string               `json:"region,omitempty"`
	MS           int64                `json:"ms"`
	Upstream     *UpstreamDiagnostics `json:"upstream,omitempty"`
}

type Allocation struct {
	APIWeight    float64 `json:"api_weight"`
	StaticWeight float64 `json:"static_weight"`
}

// UpstreamDiagnostics Nullable fields stay null when no attempt got that far.
type UpstreamDiagnostics struct {
	UpstreamKey  string  `json:"upstream_key"`
	UpstreamBase string  `json:"upstream_base"`
	Attempts     int     `json:"attempts"`
	LastError    *string `json:"last_error"`
	MS           *int64  `json:"ms"`
	Status       *int    `json:"status"`
	APIURL       string  `json:"api_url"`
	AttemptsMS   []int64 `json:"attempts_ms,omitempty"`
}

// CachedPhone is served when resolution failed but a last good number exists.
type CachedPhone struct {
	Number       string       `json:"number"`
	Cache        bool         `json:"cache"`
	LastGoodMeta LastGoodMeta `json:"last_good_meta"`
	Error        string       `json:"error"`
	MS           int64        `json:"ms"`
}

type LastGoodMeta struct {
	UpstreamKey  string               `json:"upstream_key"`
	UpstreamBase string               `json:"upstream_base"`
	AgencyID     int64                `json:"agency_id"`
	AgencyName   string               `json:"agency_name"`
	Source       string               `json:"source"`
	OnlyAds      bool                 `json:"only_ads"`
	TS           string               `json:"ts"`
	Upstream     *UpstreamDiagnostics `json:"upstream"`
	AdsLen       int                  `json:"ads_len"`
	NormalLen    int                  `json:"normal_len"`
}

// LastGood is the body of GET /v1/last-good.
type LastGood struct {
	Number string       `json:"number"`
	Meta   LastGoodMeta `json:"meta"`
}

// FallbackPhone is served when neither a fresh nor a cached number exists.
type FallbackPhone struct {
	Number   string `json:"number"`
	Fallback bool   `json:"fallback"`
	Error    string `json:"error"`
	MS       int64  `json:"ms"`
}

// Unavailable is the 503 body once every fallback tier is exhausted.
type Unavailable struct {
	Error   ErrorCode `json:"error"`
	Details string    `json:"details"`
	MS      int64     `json:"ms"`
}

type RoutingTable struct {
	OnlyAds   bool              `json:"only_ads"`
	Upstreams []RoutingUpstream `json:"upstreams"`
}

type RoutingUpstream struct {
	Key      string          `json:"key"`
	Base     string          `json:"base"`
	Weight   float64         `json:"weight"`
	Share    float64         `json:"share_pct"`
	Agencies []RoutingAgency `json:"agencies"`
}

type RoutingAgency struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Weight        float64     `json:"weight"`
	Share         float64     `json:"share_pct"`
	Allocation    *Allocation `json:"allocation"`
	StaticEnabled bool        `json:"static_enabled"`
	StaticNumbers int         `json:"static_numbers"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
