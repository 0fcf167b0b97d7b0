package models

// Quote is the priced answer for (version, quantity, days), with the
// store markup already applied.
type Quote struct {
	TotalPrice  float64 `json:"total_price"`
	PriceSingle float64 `json:"price_single"`
	Days        int     `json:"days"`
	Quantity    int     `json:"quantity"`
	Currency    string  `json:"currency"`
}

// MarketItem is one proxy line item as returned by the upstream market.
type MarketItem struct {
	ID          string `json:"id"`
	IP          string `json:"ip"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Version     string `json:"version"`
	Type        string `json:"type"`
	Country     string `json:"country"`
	Date        string `json:"date"`
	DateEnd     string `json:"date_end"`
	Unixtime    int64  `json:"unixtime"`
	UnixtimeEnd int64  `json:"unixtime_end"`
	Descr       string `json:"descr"`
	Active      bool   `json:"active"`
}

// MarketOrder is the result of an upstream buy or prolong call: one
// entry per item, keyed by the upstream item id.
type MarketOrder struct {
	Items   map[string]MarketItem `json:"list"`
	Period  int                   `json:"period"`
	Country string                `json:"country"`
}
