package models

// CreditState is the client's cached view of the server-side credit counters.
// The server is the system of record; this cache is provisional and is
// overwritten by every authoritative read.
type CreditState struct {
	DailyCount int `json:"daily_count"`
	Rewards    int `json:"rewards"`
}
